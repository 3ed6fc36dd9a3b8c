package runtime

// Object is a mapping from string key to shared value handle, with
// insertion order preserved only for deterministic display (§6); it carries
// no semantic weight. Like Array, it is a pointer type so aliases observe
// each other's mutations.
type Object struct {
	fields map[string]Value
	order  []string
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) String() string { return "[object]" }

// Get returns the field value and whether it is present.
func (o *Object) Get(name string) (Value, bool) {
	v, ok := o.fields[name]
	return v, ok
}

// Set inserts or overwrites a field, recording insertion order for fresh
// keys.
func (o *Object) Set(name string, v Value) {
	if _, exists := o.fields[name]; !exists {
		o.order = append(o.order, name)
	}
	o.fields[name] = v
}

// Has reports whether name is a field of o.
func (o *Object) Has(name string) bool {
	_, ok := o.fields[name]
	return ok
}

// Keys returns field names in insertion order. Callers must not mutate the
// returned slice.
func (o *Object) Keys() []string { return o.order }

// Len returns the number of fields.
func (o *Object) Len() int { return len(o.order) }
