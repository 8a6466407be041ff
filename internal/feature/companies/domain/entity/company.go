// Package entity defines the domain models for the companies feature.
package entity

// Company is one entry of the fixed prediction catalogue.
type Company struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}
