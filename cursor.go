package texttag

// Cursor is the scan state threaded through every read: Pos is the offset
// into the buffer and Quota the logical units left to scan. A failed read
// leaves both exactly as they were.
type Cursor struct {
	Pos   int
	Quota int
}

// NewCursor starts a scan at offset 0 with quota units to consume.
func NewCursor(quota int) Cursor {
	return Cursor{Quota: quota}
}

// Done reports whether the quota is spent.
func (c Cursor) Done() bool {
	return c.Quota <= 0
}
