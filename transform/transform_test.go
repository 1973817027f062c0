package transform_test

import (
	"strings"
	"testing"

	"github.com/Gobd/scrub"
	"github.com/Gobd/scrub/transform"
	"github.com/stretchr/testify/assert"
)

func TestStructTrimSpace(t *testing.T) {
	type inner struct {
		Val string
	}
	type outer struct {
		Name  string
		Inner inner
		Items []string
	}
	o := outer{
		Name:  "  hello  ",
		Inner: inner{Val: " world "},
		Items: []string{" a ", " b "},
	}
	transform.StructTrimSpace(&o)
	assert.Equal(t, "hello", o.Name)
	assert.Equal(t, "world", o.Inner.Val)
	assert.Equal(t, []string{"a", "b"}, o.Items)
}

func TestStructTrimSpace_Nested(t *testing.T) {
	type child struct {
		Name string
	}
	type parent struct {
		Children []child
		Ptrs     []*child
	}
	p := parent{
		Children: []child{{Name: "  a  "}, {Name: " b "}},
		Ptrs:     []*child{{Name: " c "}, nil},
	}
	transform.StructTrimSpace(&p)
	assert.Equal(t, "a", p.Children[0].Name)
	assert.Equal(t, "b", p.Children[1].Name)
	assert.Equal(t, "c", p.Ptrs[0].Name)
}

func TestStructTrimSpace_MapValues(t *testing.T) {
	type item struct {
		Label string
	}
	type s struct {
		Data  map[string]string
		Items map[string]item
		Lists map[string][]string
	}
	x := s{
		Data:  map[string]string{"k": "  val  "},
		Items: map[string]item{"i": {Label: " lbl "}},
		Lists: map[string][]string{"l": {" x "}},
	}
	transform.StructTrimSpace(&x)
	assert.Equal(t, "val", x.Data["k"])
	assert.Equal(t, "lbl", x.Items["i"].Label)
	assert.Equal(t, []string{"x"}, x.Lists["l"])
}

func TestStructTrimSpace_PointerField(t *testing.T) {
	type inner struct {
		Val string
	}
	type outer struct {
		Inner *inner
		Note  *string
		Skip  *inner
	}
	note := " note "
	o := outer{Inner: &inner{Val: "  trimme  "}, Note: &note}
	transform.StructTrimSpace(&o)
	assert.Equal(t, "trimme", o.Inner.Val)
	assert.Equal(t, "note", *o.Note)
	assert.Nil(t, o.Skip)
}

func TestStructTrimSpace_Untouched(t *testing.T) {
	type s struct {
		Name    string
		private string
		Any     any
	}
	x := s{Name: " a ", private: " b ", Any: " c "}
	transform.StructTrimSpace(&x)
	assert.Equal(t, "a", x.Name)
	assert.Equal(t, " b ", x.private)
	assert.Equal(t, " c ", x.Any)

	// Non-pointers cannot be modified and are ignored.
	transform.StructTrimSpace(x)
	transform.StructTrimSpace(nil)
	var nilPtr *s
	transform.StructTrimSpace(nilPtr)
}

func TestStructToLower(t *testing.T) {
	type s struct {
		Name string
	}
	x := s{Name: "Hello World"}
	transform.StructToLower(&x)
	assert.Equal(t, "hello world", x.Name)
}

func TestStructStringFunc(t *testing.T) {
	type s struct {
		Name string
	}
	x := s{Name: "Hello World"}
	transform.StructStringFunc(&x, strings.ToUpper)
	assert.Equal(t, "HELLO WORLD", x.Name)
}

func TestStructCapitaliseFirst(t *testing.T) {
	type review struct {
		Title string
		Body  string
		Empty string
		Tags  []string
	}
	r := review{
		Title: "great product",
		Body:  "WORKS WELL. WOULD BUY AGAIN!",
		Tags:  []string{"durable", ""},
	}
	transform.StructCapitaliseFirst(&r, scrub.LowercaseRest(), scrub.AfterPunctuation())
	assert.Equal(t, "Great product", r.Title)
	assert.Equal(t, "Works well. Would buy again!", r.Body)
	assert.Equal(t, "", r.Empty)
	assert.Equal(t, []string{"Durable", ""}, r.Tags)
}

func TestStructMulti(t *testing.T) {
	type s struct {
		Name string
	}
	x := s{Name: "  MIXED case  "}
	transform.StructMulti(&x, transform.StructTrimSpace, transform.StructToLower, func(v any) {
		transform.StructCapitaliseFirst(v)
	})
	assert.Equal(t, "Mixed case", x.Name)
}
