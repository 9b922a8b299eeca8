package model

import (
	"time"
)

type listItem struct {
	id        string
	title     string
	createdAt time.Time
}

func (i listItem) FilterValue() string { return i.title }

func (i listItem) Title() string { return i.title }

func (i listItem) Description() string {
	return i.createdAt.Format("Jan 2, 2006")
}
