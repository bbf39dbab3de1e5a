package core

// Mapping Protocol
//
// The mapping protocol is the subscript-style access protocol. The sequence
// protocol reuses it for slicing: a slice access is a subscript access with a
// slice key.

// MappingMethods is the method table of the mapping protocol. All slots are
// optional. A nil value passed to AssSubscript means deletion.
type MappingMethods struct {
	Length       func(ctx *Context, obj Value) (int, error)
	Subscript    func(ctx *Context, obj Value, key Value) (Value, error)
	AssSubscript func(ctx *Context, obj Value, key Value, value Value) error
}

var notImplementedMappingMethods = &MappingMethods{}

// NotImplementedMappingMethods returns the shared method table with all slots
// absent. It is never mutated.
func NotImplementedMappingMethods() *MappingMethods {
	return notImplementedMappingMethods
}

// A Mapping is a short-lived view over a value, through the mapping protocol.
type Mapping struct {
	Obj Value

	//lazily computed, nil until the first call to Methods
	methods *MappingMethods
}

func MappingFrom(obj Value) *Mapping {
	return &Mapping{Obj: obj}
}

func MappingWithMethods(obj Value, methods *MappingMethods) *Mapping {
	return &Mapping{Obj: obj, methods: methods}
}

// Methods resolves and memoizes the method table of the value's type.
func (m *Mapping) Methods(ctx *Context) *MappingMethods {
	if m.methods != nil {
		return m.methods
	}
	if provider, ok := m.Obj.Type(ctx).ResolveMappingProvider(); ok {
		m.methods = provider(m.Obj)
	} else {
		m.methods = notImplementedMappingMethods
	}
	return m.methods
}

func (m *Mapping) HasProtocol(ctx *Context) bool {
	return m.Methods(ctx).Subscript != nil
}

func (m *Mapping) TryProtocol(ctx *Context) error {
	if !m.HasProtocol(ctx) {
		return FmtTypeError("'%s' object is not subscriptable", m.Obj.Type(ctx).Name())
	}
	return nil
}

func (m *Mapping) Length(ctx *Context) (int, error) {
	if f := m.Methods(ctx).Length; f != nil {
		return f(ctx, m.Obj)
	}
	return 0, FmtTypeError("object of type '%s' has no len()", m.Obj.Type(ctx).Name())
}

func (m *Mapping) GetItem(ctx *Context, key Value) (Value, error) {
	if f := m.Methods(ctx).Subscript; f != nil {
		return f(ctx, m.Obj, key)
	}
	return nil, FmtTypeError("'%s' object is not subscriptable", m.Obj.Type(ctx).Name())
}

func (m *Mapping) assItem(ctx *Context, key Value, value Value) error {
	if f := m.Methods(ctx).AssSubscript; f != nil {
		return f(ctx, m.Obj, key, value)
	}
	if value != nil {
		return FmtTypeError(
			"'%s' object does not support item assignment", m.Obj.Type(ctx).Name())
	}
	return FmtTypeError("'%s' object does not support item deletion", m.Obj.Type(ctx).Name())
}

func (m *Mapping) SetItem(ctx *Context, key Value, value Value) error {
	return m.assItem(ctx, key, value)
}

func (m *Mapping) DelItem(ctx *Context, key Value) error {
	return m.assItem(ctx, key, nil)
}
