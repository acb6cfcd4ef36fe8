// Package cli implements the interactive LocalAddons client: a REPL over
// the store layer for browsing the workshop catalog, managing the cart, and
// handling accounts. All state lives in internal/client/stores; this package
// only reads input, dispatches actions, and renders results.
package cli
