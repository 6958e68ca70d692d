// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

// Course is the table of contents of a course or an ebook.
type Course struct {
	Lang   string
	Title  string
	Topics []*Topic
}

func (c *Course) ElementName() string { return "Course" }

func (c *Course) Values() Values {
	return Values{"lang": c.Lang, "title": c.Title}
}

func (c *Course) Children() []Element {
	res := make([]Element, 0, len(c.Topics))
	for _, t := range c.Topics {
		res = append(res, t)
	}

	return res
}

func (c *Course) AddChild(child Element) bool {
	t, ok := child.(*Topic)
	if ok {
		c.Topics = append(c.Topics, t)
	}

	return ok
}

// Topic is a chapter. Page refers to the page file with its content.
type Topic struct {
	Label     string
	Page      string
	ID        string
	Subtopics []*Subtopic
}

func (t *Topic) ElementName() string { return "Topic" }

func (t *Topic) Values() Values {
	return Values{"label": t.Label, "page": t.Page, "id": t.ID}
}

func (t *Topic) Children() []Element {
	res := make([]Element, 0, len(t.Subtopics))
	for _, s := range t.Subtopics {
		res = append(res, s)
	}

	return res
}

func (t *Topic) AddChild(child Element) bool {
	s, ok := child.(*Subtopic)
	if ok {
		t.Subtopics = append(t.Subtopics, s)
	}

	return ok
}

type Subtopic struct {
	Label string
	Page  string
	ID    string
}

func (s *Subtopic) ElementName() string { return "Subtopic" }

func (s *Subtopic) Values() Values {
	return Values{"label": s.Label, "page": s.Page, "id": s.ID}
}

func topicFields() []Field {
	return []Field{
		StringField("label", ""),
		StringField("page", ""),
		StringField("id", ""),
	}
}

func courseDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:   "Course",
			Fields: []Field{StringField("lang", "en"), StringField("title", "")},
			New: func(v Values) (Element, error) {
				return &Course{Lang: v.String("lang"), Title: v.String("title")}, nil
			},
		},
		{
			Name:   "Topic",
			Fields: topicFields(),
			New: func(v Values) (Element, error) {
				return &Topic{Label: v.String("label"), Page: v.String("page"), ID: v.String("id")}, nil
			},
		},
		{
			Name:   "Subtopic",
			Fields: topicFields(),
			New: func(v Values) (Element, error) {
				return &Subtopic{Label: v.String("label"), Page: v.String("page"), ID: v.String("id")}, nil
			},
		},
	}
}
