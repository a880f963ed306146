// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// impl_rows.go - literal rows, the compact fixture notation used in tests.

package builder

// Rows returns a Constructor for a block given as one string per object,
// e.g. Rows("XX.", ".X.") builds two objects over three attributes. RowMark
// ('X') is an incident cell; any other byte is empty.
//
// Errors: ErrTooSmall for no rows or empty rows; ErrConstructFailed when the
// rows have different widths.
func Rows(rows ...string) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodRows, len(rows), MinScale); err != nil {
			return err
		}
		m := len(rows[0])
		if err := validateMin(MethodRows, m, MinScale); err != nil {
			return err
		}
		for i, r := range rows {
			if len(r) != m {
				return builderErrorf(ErrConstructFailed, MethodRows, "row %d has width %d, want %d", i, len(r), m)
			}
		}

		first := d.block(cfg, m)
		for _, r := range rows {
			d.object(cfg, first, m, func(j int) bool { return r[j] == RowMark })
		}

		return nil
	}
}
