package model

// Data is the root document.
type Data struct {
	Minifigs []Minifig `json:"minifigs"`
	Parts    []Part    `json:"parts"`
	Sets     []Set     `json:"sets"`
}

// Part is a catalog part.
type Part struct {
	Number         string `json:"number"`
	Name           string `json:"name"`
	PartCategoryID uint32 `json:"part_category_id"`
	Material       string `json:"material"`
}

// Minifig is a catalog minifigure.
type Minifig struct {
	Number     string  `json:"number"`
	Name       string  `json:"name"`
	PartsCount uint32  `json:"parts_count"`
	ImgURL     *string `json:"img_url,omitempty"`
}

// Set is a catalog set with its inventory versions inlined.
type Set struct {
	Number        string       `json:"number"`
	Name          string       `json:"name"`
	Year          uint16       `json:"year"`
	ThemeID       uint32       `json:"theme_id"`
	PartsCount    uint32       `json:"parts_count"`
	ImgURL        *string      `json:"img_url,omitempty"`
	Versions      []SetVersion `json:"versions"`
	IsPack        bool         `json:"is_pack"`
	IsUnreleased  bool         `json:"is_unreleased"`
	IsAccessories bool         `json:"is_accessories"`
}

// SetVersion is one inventory snapshot of a set.
type SetVersion struct {
	Version  uint16       `json:"version"`
	Minifigs []SetMinifig `json:"minifigs"`
	Parts    []SetPart    `json:"parts"`
}

// SetMinifig is a minifig entry of a set version.
type SetMinifig struct {
	Number   string `json:"number"`
	Quantity uint16 `json:"quantity"`
}

// FindSet returns the set with the given number.
func (d *Data) FindSet(number string) (Set, bool) {
	for _, s := range d.Sets {
		if s.Number == number {
			return s, true
		}
	}
	return Set{}, false
}

// PartLists returns the part list of every version, in version order.
func (s Set) PartLists() [][]SetPart {
	lists := make([][]SetPart, len(s.Versions))
	for i, v := range s.Versions {
		lists[i] = v.Parts
	}
	return lists
}
