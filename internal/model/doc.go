// Package model defines Declaration, the value describing one marked field
// discovered during a generation run.
package model
