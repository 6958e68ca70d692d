// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

import "slices"

// App is the root of an app definition. It holds the theme, the deployment and the pages.
type App struct {
	SmlVersion string
	Name       string
	Version    string
	ID         string
	Icon       string
	Theme      *Theme
	Deployment *Deployment
	Pages      []*Page
}

func (a *App) ElementName() string { return "App" }

func (a *App) Values() Values {
	return Values{
		"smlVersion": a.SmlVersion,
		"name":       a.Name,
		"version":    a.Version,
		"id":         a.ID,
		"icon":       a.Icon,
	}
}

// Children returns the theme and the deployment, if set, followed by the pages.
func (a *App) Children() []Element {
	var res []Element
	if a.Theme != nil {
		res = append(res, a.Theme)
	}

	if a.Deployment != nil {
		res = append(res, a.Deployment)
	}

	for _, p := range a.Pages {
		res = append(res, p)
	}

	return res
}

// AddChild accepts a Theme, a Deployment and any number of Pages. A second Theme or Deployment replaces the first.
func (a *App) AddChild(child Element) bool {
	switch c := child.(type) {
	case *Theme:
		a.Theme = c
	case *Deployment:
		a.Deployment = c
	case *Page:
		a.Pages = append(a.Pages, c)
	default:
		return false
	}

	return true
}

func appDescriptor() Descriptor {
	return Descriptor{
		Name: "App",
		Fields: []Field{
			StringField("smlVersion", "1.1"),
			StringField("name", ""),
			VersionField("version", "1.0.0"),
			StringField("id", ""),
			StringField("icon", ""),
		},
		New: func(v Values) (Element, error) {
			return &App{
				SmlVersion: v.String("smlVersion"),
				Name:       v.String("name"),
				Version:    v.String("version"),
				ID:         v.String("id"),
				Icon:       v.String("icon"),
			}, nil
		},
	}
}

// ThemeRoles are the color roles of a Theme in declaration order. Color fields accept them as values.
var ThemeRoles = []string{
	"primary", "onPrimary", "primaryContainer", "onPrimaryContainer",
	"secondary", "onSecondary", "secondaryContainer", "onSecondaryContainer",
	"tertiary", "onTertiary", "tertiaryContainer", "onTertiaryContainer",
	"error", "onError", "errorContainer", "onErrorContainer",
	"background", "onBackground",
	"surface", "onSurface", "surfaceVariant", "onSurfaceVariant",
	"outline",
}

// IsThemeRole returns true if s names a theme color role.
func IsThemeRole(s string) bool {
	return slices.Contains(ThemeRoles, s)
}

// Theme maps the color roles to colors.
type Theme struct {
	Primary              string
	OnPrimary            string
	PrimaryContainer     string
	OnPrimaryContainer   string
	Secondary            string
	OnSecondary          string
	SecondaryContainer   string
	OnSecondaryContainer string
	Tertiary             string
	OnTertiary           string
	TertiaryContainer    string
	OnTertiaryContainer  string
	Error                string
	OnError              string
	ErrorContainer       string
	OnErrorContainer     string
	Background           string
	OnBackground         string
	Surface              string
	OnSurface            string
	SurfaceVariant       string
	OnSurfaceVariant     string
	Outline              string
}

// roles returns pointers to the color fields, in the order of ThemeRoles.
func (t *Theme) roles() []*string {
	return []*string{
		&t.Primary, &t.OnPrimary, &t.PrimaryContainer, &t.OnPrimaryContainer,
		&t.Secondary, &t.OnSecondary, &t.SecondaryContainer, &t.OnSecondaryContainer,
		&t.Tertiary, &t.OnTertiary, &t.TertiaryContainer, &t.OnTertiaryContainer,
		&t.Error, &t.OnError, &t.ErrorContainer, &t.OnErrorContainer,
		&t.Background, &t.OnBackground,
		&t.Surface, &t.OnSurface, &t.SurfaceVariant, &t.OnSurfaceVariant,
		&t.Outline,
	}
}

// Color returns the color of a role or "" if the role is unknown or unset.
func (t *Theme) Color(role string) string {
	for i, p := range t.roles() {
		if ThemeRoles[i] == role {
			return *p
		}
	}

	return ""
}

func (t *Theme) ElementName() string { return "Theme" }

func (t *Theme) Values() Values {
	v := Values{}
	for i, p := range t.roles() {
		v[ThemeRoles[i]] = *p
	}

	return v
}

func themeDescriptor() Descriptor {
	fields := make([]Field, 0, len(ThemeRoles))
	for _, role := range ThemeRoles {
		fields = append(fields, ColorField(role, ""))
	}

	return Descriptor{
		Name:   "Theme",
		Fields: fields,
		New: func(v Values) (Element, error) {
			t := &Theme{}
			for i, p := range t.roles() {
				*p = v.String(ThemeRoles[i])
			}

			return t, nil
		},
	}
}

// Deployment lists the files which belong to an app.
type Deployment struct {
	Files []*File
}

func (d *Deployment) ElementName() string { return "Deployment" }
func (d *Deployment) Values() Values      { return Values{} }

func (d *Deployment) Children() []Element {
	res := make([]Element, 0, len(d.Files))
	for _, f := range d.Files {
		res = append(res, f)
	}

	return res
}

func (d *Deployment) AddChild(child Element) bool {
	f, ok := child.(*File)
	if ok {
		d.Files = append(d.Files, f)
	}

	return ok
}

func deploymentDescriptor() Descriptor {
	return Descriptor{
		Name: "Deployment",
		New: func(v Values) (Element, error) {
			return &Deployment{}, nil
		},
	}
}

// File is a single deployed resource.
type File struct {
	Path string
	Type string
}

func (f *File) ElementName() string { return "File" }

func (f *File) Values() Values {
	return Values{"path": f.Path, "type": f.Type}
}

// FileTypes are the accepted values of File.Type.
var FileTypes = []string{"page", "image", "video", "sound", "xml", "markdown"}

func fileDescriptor() Descriptor {
	return Descriptor{
		Name: "File",
		Fields: []Field{
			StringField("path", ""),
			EnumField("type", "page", FileTypes...),
		},
		New: func(v Values) (Element, error) {
			return &File{Path: v.String("path"), Type: v.String("type")}, nil
		},
	}
}
