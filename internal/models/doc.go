// Package models defines the core domain models for Kasir.
//
// # Catalog
//
// Product and Category rows come from the catalog store. The till treats them
// as read-only snapshots: prices and category names are copied into CartItem
// at the moment a product is added, never re-fetched.
//
// # Optional fields
//
// Product.CategoryID and Product.Stock are optional. Use the accessor methods
// rather than checking the pointers directly:
//   - Product.Category reports whether a category is assigned.
//   - Product.InStock treats a missing stock count as unconstrained.
//
// # Staff
//
// Cashier is a staff account that can open tills and manage the catalog.
package models
