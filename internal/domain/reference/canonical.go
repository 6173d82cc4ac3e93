package reference

// NameOverrides maps a player id to its authoritative display name.
// A nil map is valid and overrides nothing.
type NameOverrides map[int64]string

// DefaultPlayerOverrides returns the built-in corrections for players whose
// source spelling is inconsistent across files.
func DefaultPlayerOverrides() NameOverrides {
	return NameOverrides{
		4354:   "Philip Foden",
		25742:  "Karly Roestbakken",
		25546:  "Cheyna Lee Matthews",
		4951:   "Quinn",
		5082:   "Marta Vieira da Silva",
		18617:  "Mykola Matviyenko",
		3961:   "N'Golo Kanté",
		5659:   "Khadim N'Diaye",
		401453: "David Ngog",
		184468: "Álvaro Zamora",
	}
}

// Canonicalize returns the override for id, or raw when none is defined.
func (o NameOverrides) Canonicalize(id int64, raw string) string {
	if name, ok := o[id]; ok {
		return name
	}
	return raw
}

// CanonicalizePtr is Canonicalize for optional source names. A nil raw name
// stays nil unless an override exists.
func (o NameOverrides) CanonicalizePtr(id *int64, raw *string) *string {
	if id == nil {
		return raw
	}
	if name, ok := o[*id]; ok {
		return &name
	}
	return raw
}

// Merge returns a copy of o with other layered on top.
func (o NameOverrides) Merge(other NameOverrides) NameOverrides {
	out := make(NameOverrides, len(o)+len(other))
	for id, name := range o {
		out[id] = name
	}
	for id, name := range other {
		out[id] = name
	}
	return out
}
