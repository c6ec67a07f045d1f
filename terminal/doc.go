// Package terminal wraps a tcell screen behind the cell-buffer interface the renderer flushes into.
//
// Features:
//   - True color (24-bit) and 256-color palette output
//   - Row-major cell flush with per-cell style conversion
//   - Mouse motion reporting for hover picking
//   - Clean terminal restoration on exit/panic
package terminal
