// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

// FontWeights are the accepted values of the fontWeight fields.
var FontWeights = []string{"thin", "extraLight", "light", "regular", "medium", "semiBold", "bold", "extraBold", "black"}

// TextAligns are the accepted values of the textAlign fields.
var TextAligns = []string{"left", "center", "right"}

// ImageScales are the accepted values of Image.Scale and AsyncImage.Scale.
var ImageScales = []string{"crop", "fit", "inside", "fillbounds", "fillheight", "fillwidth", "none"}

// Text is a single styled text.
type Text struct {
	Layout
	Text       string
	Color      string
	FontSize   int
	FontWeight string
	TextAlign  string
}

func (t *Text) ElementName() string { return "Text" }

func (t *Text) Values() Values {
	return t.Layout.put(Values{
		"text":       t.Text,
		"color":      t.Color,
		"fontSize":   t.FontSize,
		"fontWeight": t.FontWeight,
		"textAlign":  t.TextAlign,
	})
}

func textFields() []Field {
	return []Field{
		ColorField("color", "onBackground"),
		IntField("fontSize", 14),
		EnumField("fontWeight", "regular", FontWeights...),
		EnumField("textAlign", "left", TextAligns...),
	}
}

// Markdown is a text in markdown syntax, either inline in Text or loaded from the file Part.
type Markdown struct {
	Layout
	Text       string
	Part       string
	Color      string
	FontSize   int
	FontWeight string
	TextAlign  string
}

func (m *Markdown) ElementName() string { return "Markdown" }

func (m *Markdown) Values() Values {
	return m.Layout.put(Values{
		"text":       m.Text,
		"part":       m.Part,
		"color":      m.Color,
		"fontSize":   m.FontSize,
		"fontWeight": m.FontWeight,
		"textAlign":  m.TextAlign,
	})
}

// Button navigates to Link when clicked.
type Button struct {
	Layout
	Label           string
	Link            string
	Color           string
	BackgroundColor string
	Icon            *Icon
}

func (b *Button) ElementName() string { return "Button" }

func (b *Button) Values() Values {
	v := b.Layout.put(Values{
		"label":           b.Label,
		"link":            b.Link,
		"color":           b.Color,
		"backgroundColor": b.BackgroundColor,
	})

	if b.Icon != nil {
		v["icon"] = b.Icon
	}

	return v
}

// Icon is only used inline, e.g. 'icon: Icon { name: "home" }'.
type Icon struct {
	Name  string
	Color string
	Size  int
}

func (i *Icon) ElementName() string { return "Icon" }

func (i *Icon) Values() Values {
	return Values{"name": i.Name, "color": i.Color, "size": i.Size}
}

// Image shows a bundled image.
type Image struct {
	Layout
	Src   string
	Scale string
	Link  string
}

func (i *Image) ElementName() string { return "Image" }

func (i *Image) Values() Values {
	return i.Layout.put(Values{"src": i.Src, "scale": i.Scale, "link": i.Link})
}

// AsyncImage shows an image loaded from a URL.
type AsyncImage struct {
	Layout
	Src   string
	Scale string
	Link  string
}

func (i *AsyncImage) ElementName() string { return "AsyncImage" }

func (i *AsyncImage) Values() Values {
	return i.Layout.put(Values{"src": i.Src, "scale": i.Scale, "link": i.Link})
}

// Spacer is an empty gap of Amount units.
type Spacer struct {
	Layout
	Amount int
}

func (s *Spacer) ElementName() string { return "Spacer" }

func (s *Spacer) Values() Values {
	return s.Layout.put(Values{"amount": s.Amount})
}

type Video struct {
	Layout
	Src string
}

func (v *Video) ElementName() string { return "Video" }

func (v *Video) Values() Values {
	return v.Layout.put(Values{"src": v.Src})
}

// Youtube embeds the video with the given ID.
type Youtube struct {
	Layout
	ID string
}

func (y *Youtube) ElementName() string { return "Youtube" }

func (y *Youtube) Values() Values {
	return y.Layout.put(Values{"id": y.ID})
}

type Sound struct {
	Layout
	Src string
}

func (s *Sound) ElementName() string { return "Sound" }

func (s *Sound) Values() Values {
	return s.Layout.put(Values{"src": s.Src})
}

// Scene embeds a 3D scene. Ratio is the width to height ratio of the viewport.
type Scene struct {
	Layout
	Src   string
	Ratio float64
}

func (s *Scene) ElementName() string { return "Scene" }

func (s *Scene) Values() Values {
	return s.Layout.put(Values{"src": s.Src, "ratio": s.Ratio})
}

func withLayout(fields ...Field) []Field {
	return append(fields, layoutFields()...)
}

func widgetDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:   "Text",
			Fields: withLayout(append([]Field{StringField("text", "")}, textFields()...)...),
			New: func(v Values) (Element, error) {
				return &Text{
					Layout:     layoutFrom(v),
					Text:       v.String("text"),
					Color:      v.String("color"),
					FontSize:   v.Int("fontSize"),
					FontWeight: v.String("fontWeight"),
					TextAlign:  v.String("textAlign"),
				}, nil
			},
		},
		{
			Name:   "Markdown",
			Fields: withLayout(append([]Field{StringField("text", ""), StringField("part", "")}, textFields()...)...),
			New: func(v Values) (Element, error) {
				return &Markdown{
					Layout:     layoutFrom(v),
					Text:       v.String("text"),
					Part:       v.String("part"),
					Color:      v.String("color"),
					FontSize:   v.Int("fontSize"),
					FontWeight: v.String("fontWeight"),
					TextAlign:  v.String("textAlign"),
				}, nil
			},
		},
		{
			Name: "Button",
			Fields: withLayout(
				StringField("label", ""),
				StringField("link", ""),
				ColorField("color", "onPrimary"),
				ColorField("backgroundColor", "primary"),
				ElementField("icon", "Icon"),
			),
			New: func(v Values) (Element, error) {
				b := &Button{
					Layout:          layoutFrom(v),
					Label:           v.String("label"),
					Link:            v.String("link"),
					Color:           v.String("color"),
					BackgroundColor: v.String("backgroundColor"),
				}

				if icon, ok := v.Element("icon").(*Icon); ok {
					b.Icon = icon
				}

				return b, nil
			},
		},
		{
			Name: "Icon",
			Fields: []Field{
				StringField("name", ""),
				ColorField("color", ""),
				IntField("size", 24),
			},
			New: func(v Values) (Element, error) {
				return &Icon{Name: v.String("name"), Color: v.String("color"), Size: v.Int("size")}, nil
			},
		},
		{
			Name:   "Image",
			Fields: withLayout(StringField("src", ""), EnumField("scale", "fit", ImageScales...), StringField("link", "")),
			New: func(v Values) (Element, error) {
				return &Image{Layout: layoutFrom(v), Src: v.String("src"), Scale: v.String("scale"), Link: v.String("link")}, nil
			},
		},
		{
			Name:   "AsyncImage",
			Fields: withLayout(StringField("src", ""), EnumField("scale", "fit", ImageScales...), StringField("link", "")),
			New: func(v Values) (Element, error) {
				return &AsyncImage{Layout: layoutFrom(v), Src: v.String("src"), Scale: v.String("scale"), Link: v.String("link")}, nil
			},
		},
		{
			Name:   "Spacer",
			Fields: withLayout(IntField("amount", 0)),
			New: func(v Values) (Element, error) {
				return &Spacer{Layout: layoutFrom(v), Amount: v.Int("amount")}, nil
			},
		},
		{
			Name:   "Video",
			Fields: withLayout(StringField("src", "")),
			New: func(v Values) (Element, error) {
				return &Video{Layout: layoutFrom(v), Src: v.String("src")}, nil
			},
		},
		{
			Name:   "Youtube",
			Fields: withLayout(StringField("id", "")),
			New: func(v Values) (Element, error) {
				return &Youtube{Layout: layoutFrom(v), ID: v.String("id")}, nil
			},
		},
		{
			Name:   "Sound",
			Fields: withLayout(StringField("src", "")),
			New: func(v Values) (Element, error) {
				return &Sound{Layout: layoutFrom(v), Src: v.String("src")}, nil
			},
		},
		{
			Name:   "Scene",
			Fields: withLayout(StringField("src", ""), FloatField("ratio", 1.0)),
			New: func(v Values) (Element, error) {
				return &Scene{Layout: layoutFrom(v), Src: v.String("src"), Ratio: v.Float("ratio")}, nil
			},
		},
	}
}
