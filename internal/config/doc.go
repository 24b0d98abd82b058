// Package config loads the optional viewbinding.yaml file.
//
// Example:
//
//	version: "1"
//	marker: bindview
//	lookup_method: FindViewByID
//	unbinder:
//	  path: viewbinding-generator/binder
//	  name: Unbinder
//	output_dir: ""
//	stable_order: false
//	packages:
//	  - ./...
//
// Every key is optional; missing keys take the defaults shown above.
package config
