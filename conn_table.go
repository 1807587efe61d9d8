package quicgate

// The connTable maps connection IDs to connections within one processing
// context. It is owned exclusively by that context's Server: all access
// happens on the goroutine processing the context's packets, so the table is
// not synchronized. Entries are created at acceptance and removed at
// teardown; no two live connections share a connection ID.
type connTable struct {
	conns map[string] /* string(ConnectionID) */ *Conn
}

func newConnTable() *connTable {
	return &connTable{conns: make(map[string]*Conn)}
}

func (t *connTable) Get(id ConnectionID) (*Conn, bool) {
	c, ok := t.conns[string(id)]
	return c, ok
}

func (t *connTable) Add(id ConnectionID, c *Conn) {
	t.conns[string(id)] = c
}

func (t *connTable) Remove(id ConnectionID) {
	delete(t.conns, string(id))
}

func (t *connTable) Len() int {
	return len(t.conns)
}
