// File: internal/domain/model/menu.go
package model

// MenuItem is one dish on a canteen's menu for a given day.
type MenuItem struct {
	Title      string
	Properties []string // dietary tags, e.g. "G", "L", "Veg"
}
