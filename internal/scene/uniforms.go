package scene

import "sort"

// Uniforms stores shader parameters for hosts that read them back each frame.
type Uniforms struct {
	values  map[string]any
	version uint64
}

func NewUniforms() *Uniforms {
	return &Uniforms{values: make(map[string]any)}
}

func (u *Uniforms) SetShaderParam(name string, value any) {
	u.values[name] = value
	u.version++
}

func (u *Uniforms) Get(name string) (any, bool) {
	v, ok := u.values[name]
	return v, ok
}

// Version increases on every write so readers can skip unchanged frames.
func (u *Uniforms) Version() uint64 {
	return u.version
}

func (u *Uniforms) Names() []string {
	names := make([]string, 0, len(u.values))
	for n := range u.values {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
