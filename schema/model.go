package schema

// Table describes one relational table as declared by the models package
// (or a YAML definition). Drift detection compares these against the live
// database.
type Table struct {
	Name       string
	Columns    []Column
	PrimaryKey []string // filled when more than one column is tagged primary
}

type Column struct {
	Name       string
	Type       string
	Primary    bool
	Unique     bool
	NotNull    bool
	Default    *string
	ForeignKey *ForeignKey
}

type ForeignKey struct {
	ReferencesTable  string
	ReferencesColumn string
	OnDelete         string // CASCADE, SET NULL, RESTRICT, etc.
	OnUpdate         string
}

// Column returns the column with the given name, or nil.
func (t Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// PrimaryKeyColumns returns the primary key column names in declaration
// order, whether the key is simple or composite.
func (t Table) PrimaryKeyColumns() []string {
	if len(t.PrimaryKey) > 0 {
		return t.PrimaryKey
	}
	var pk []string
	for _, c := range t.Columns {
		if c.Primary {
			pk = append(pk, c.Name)
		}
	}
	return pk
}

// Default is a convenience for building column definitions with a literal
// default value.
func Default(v string) *string {
	return &v
}
