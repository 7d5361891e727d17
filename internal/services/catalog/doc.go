// Package catalog resolves the model list for a commodity.
//
// It fetches the commodity index, looks up the commodity's model-list
// document, applies the arButtons policy and hands back a Catalog whose
// first model has already been requested from the lazy loader.
package catalog
