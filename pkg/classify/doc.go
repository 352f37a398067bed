// Package classify derives an icon's collection, category, style and name
// from its path relative to the scan root.
//
// Icon packs disagree on directory layout, so the derivation is a strategy
// picked per collection from a Table:
//
//	category-first   {collection}/{category}/{style}/{name}.svg   (default)
//	style-first      {collection}/{style}/{category...}/{name}.svg
//	flat             {collection}/{style}/{name}.svg
//
// Missing segments resolve to the sentinels types.DefaultCategory and
// types.DefaultStyle; classification never fails. Every strategy is a pure
// function of the directory segments and the style vocabulary, so a Table can
// be consulted from any number of goroutines.
package classify
