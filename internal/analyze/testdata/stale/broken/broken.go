package broken

type Broken struct {
	field View `bindview:"1"`
