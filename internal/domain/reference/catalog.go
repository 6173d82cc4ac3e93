package reference

// Entry is one row of a controlled-vocabulary table.
type Entry struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Conflict records a later sighting of an id under a different name.
type Conflict struct {
	ID       int64
	Kept     string
	Rejected string
}

// Catalog deduplicates (id, name) pairs. The first non-empty name seen for an
// id wins; later different names are recorded as conflicts and never replace
// it. An empty name is an absent name.
type Catalog struct {
	entries   []Entry
	index     map[int64]int
	conflicts []Conflict
}

func NewCatalog() *Catalog {
	return &Catalog{index: make(map[int64]int)}
}

// Observe records an (id, name) sighting and reports whether the id was new.
func (c *Catalog) Observe(id int64, name string) bool {
	if i, ok := c.index[id]; ok {
		switch kept := c.entries[i].Name; {
		case name == "" || kept == name:
		case kept == "":
			c.entries[i].Name = name
		default:
			c.conflicts = append(c.conflicts, Conflict{ID: id, Kept: kept, Rejected: name})
		}
		return false
	}
	c.index[id] = len(c.entries)
	c.entries = append(c.entries, Entry{ID: id, Name: name})
	return true
}

// ObserveRef records an optional reference and ignores it when id is absent.
func (c *Catalog) ObserveRef(id *int64, name *string) {
	if id == nil {
		return
	}
	n := ""
	if name != nil {
		n = *name
	}
	c.Observe(*id, n)
}

func (c *Catalog) Contains(id int64) bool {
	_, ok := c.index[id]
	return ok
}

func (c *Catalog) Name(id int64) (string, bool) {
	i, ok := c.index[id]
	if !ok {
		return "", false
	}
	return c.entries[i].Name, true
}

// Entries returns the catalog in first-seen order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) Conflicts() []Conflict {
	return append([]Conflict(nil), c.conflicts...)
}
