package xfab

// RGB is a display color attached to an object class.
type RGB struct {
	R, G, B uint8
}

// ClassField is one typed field an object of the class must populate. The
// type is a short tag consumed by the assembler macro the class expands
// to.
type ClassField struct {
	Type string
	Name string
}

// Known field type tags.
const (
	FieldTypeUnsigned = "U"
	FieldTypeSigned   = "S"
	FieldTypeWord     = "UU"
	FieldTypeText     = "T"
	FieldTypeFlag     = "F"
)

// ObjectClass defines the schema objects of that class populate, plus the
// macro name and display color the editor shows it with.
type ObjectClass struct {
	Name   string
	Macro  string
	Color  RGB
	Fields []ClassField
}

// NewObjectClass returns a class with the default white display color.
func NewObjectClass(name string) *ObjectClass {
	return &ObjectClass{
		Name:  name,
		Color: RGB{255, 255, 255},
	}
}

// Field returns the named field definition, or nil.
func (oc *ObjectClass) Field(name string) *ClassField {
	for i := range oc.Fields {
		if oc.Fields[i].Name == name {
			return &oc.Fields[i]
		}
	}
	return nil
}
