// Command genvec writes the per-dimension method sets of vecmath.Vec2, Vec3 and Vec4.
//
// The arithmetic itself lives in vecmath/vector.go as generic helpers; this tool only
// emits the thin typed wrappers so the three vector types share one implementation.
//
//	go run ./cmd/genvec -out vecmath/vec_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

type vecType struct {
	N     int
	Comps []string // component accessor names, in index order

	Next string // type produced by Extend, empty if none
	Prev string // type produced by Truncate, empty if none
}

func (v vecType) Name() string { return fmt.Sprintf("Vec%d", v.N) }
func (v vecType) Ctor() string { return fmt.Sprintf("V%d", v.N) }

// Params is the lower-case constructor parameter list: "x, y, z".
func (v vecType) Params() string {
	ps := make([]string, len(v.Comps))
	for i, c := range v.Comps {
		ps[i] = strings.ToLower(c)
	}
	return strings.Join(ps, ", ")
}

// Fields is the Truncate element list: "v[0], v[1]".
func (v vecType) Fields() string {
	fs := make([]string, v.N-1)
	for i := range fs {
		fs[i] = fmt.Sprintf("v[%d]", i)
	}
	return strings.Join(fs, ", ")
}

// ExtendFields is the Extend element list: "v[0], v[1], s".
func (v vecType) ExtendFields() string {
	fs := make([]string, v.N+1)
	for i := 0; i < v.N; i++ {
		fs[i] = fmt.Sprintf("v[%d]", i)
	}
	fs[v.N] = "s"
	return strings.Join(fs, ", ")
}

var types = []vecType{
	{N: 2, Comps: []string{"X", "Y"}, Next: "Vec3"},
	{N: 3, Comps: []string{"X", "Y", "Z"}, Next: "Vec4", Prev: "Vec2"},
	{N: 4, Comps: []string{"X", "Y", "Z", "W"}, Prev: "Vec3"},
}

var tmpl = template.Must(template.New("vec").Parse(`// Code generated by genvec. DO NOT EDIT.

package vecmath
{{range $t := .}}
// {{$t.Name}} is a {{$t.N}}-component single-precision vector. Component i is v[i].
type {{$t.Name}} [{{$t.N}}]float32

// {{$t.Ctor}} returns a {{$t.Name}} with the given components.
func {{$t.Ctor}}({{$t.Params}} float32) {{$t.Name}} { return {{$t.Name}}{ {{- $t.Params -}} } }
{{range $i, $c := $t.Comps}}
func (v {{$t.Name}}) {{$c}}() float32 { return v[{{$i}}] }
{{- end}}

// Add returns v+o.
func (v {{$t.Name}}) Add(o {{$t.Name}}) {{$t.Name}} { return add(v, o) }

// Sub returns v-o.
func (v {{$t.Name}}) Sub(o {{$t.Name}}) {{$t.Name}} { return sub(v, o) }

// AddScalar adds s to every component.
func (v {{$t.Name}}) AddScalar(s float32) {{$t.Name}} { return addScalar(v, s) }

// SubScalar subtracts s from every component.
func (v {{$t.Name}}) SubScalar(s float32) {{$t.Name}} { return subScalar(v, s) }

// Mul scales v by s.
func (v {{$t.Name}}) Mul(s float32) {{$t.Name}} { return mulScalar(v, s) }

// Div divides every component by s.
func (v {{$t.Name}}) Div(s float32) {{$t.Name}} { return divScalar(v, s) }

// Neg returns -v.
func (v {{$t.Name}}) Neg() {{$t.Name}} { return neg(v) }

// Dot returns the dot product of v and o.
func (v {{$t.Name}}) Dot(o {{$t.Name}}) float32 { return dot(v, o) }

// Len returns the Euclidean length of v.
func (v {{$t.Name}}) Len() float32 { return length(v) }

// LenSqr returns the squared length of v.
func (v {{$t.Name}}) LenSqr() float32 { return dot(v, v) }

// Normalize returns v scaled to unit length. A zero vector yields NaN components.
func (v {{$t.Name}}) Normalize() {{$t.Name}} { return normalize(v) }

// ApproxEqual reports whether every component of v is within eps of o.
func (v {{$t.Name}}) ApproxEqual(o {{$t.Name}}, eps float32) bool { return approxEqual(v, o, eps) }

// Array returns the components as a plain array.
func (v {{$t.Name}}) Array() [{{$t.N}}]float32 { return [{{$t.N}}]float32(v) }
{{- if $t.Next}}

// Extend appends s as the last component.
func (v {{$t.Name}}) Extend(s float32) {{$t.Next}} { return {{$t.Next}}{ {{- $t.ExtendFields -}} } }
{{- end}}
{{- if $t.Prev}}

// Truncate drops the last component.
func (v {{$t.Name}}) Truncate() {{$t.Prev}} { return {{$t.Prev}}{ {{- $t.Fields -}} } }
{{- end}}
{{end}}`))

func main() {
	var out string
	flag.StringVar(&out, "out", "vec_gen.go", "Output file.")
	flag.Parse()

	src, err := generate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func generate() ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, types); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
