package doclet

// Category identifies one kind of route parameter tag and the doclet
// collection its occurrences are accumulated in.
type Category int

const (
	BodyParams Category = iota
	HeaderParams
	ResponseCodes
	ReturnParams
	RouteParams
)

var categoryInfo = [...]struct {
	key   string
	tag   string
	title string
}{
	BodyParams:    {key: "bodyparams", tag: "bodyparam", title: "Body Parameters"},
	HeaderParams:  {key: "headerparams", tag: "headerparam", title: "Header Parameters"},
	ResponseCodes: {key: "responsecodes", tag: "responsecode", title: "Response Code"},
	ReturnParams:  {key: "returnparams", tag: "returnparam", title: "Return Parameters"},
	RouteParams:   {key: "routeparams", tag: "routeparam", title: "Route Parameters"},
}

// Categories returns every category in registration order.
func Categories() []Category {
	return []Category{BodyParams, HeaderParams, ResponseCodes, ReturnParams, RouteParams}
}

func (c Category) Valid() bool {
	return c >= BodyParams && c <= RouteParams
}

// Key is the doclet property name holding the collection, e.g. "bodyparams".
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return categoryInfo[c].key
}

// TagName is the annotation keyword, e.g. "bodyparam".
func (c Category) TagName() string {
	if !c.Valid() {
		return ""
	}
	return categoryInfo[c].tag
}

// Title is the heading of the rendered parameter table.
func (c Category) Title() string {
	if !c.Valid() {
		return ""
	}
	return categoryInfo[c].title
}

// HasAttributes reports whether entries of this category carry the
// optional and defaultvalue fields. Route parameters do not.
func (c Category) HasAttributes() bool {
	return c.Valid() && c != RouteParams
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return c.Key()
}
