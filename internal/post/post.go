package post

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Template is the header written at the top of every new post.
const Template = `---
layout: post
title:  #title
date:   #time
author: dox4
categories: TODO
---
`

const (
	TimeLayout    = "2006-01-02 15:04:05"
	DateLayout    = "2006-01-02"
	DefaultDir    = "_posts"
	DefaultOffset = "+0800"
	Extension     = ".markdown"

	titlePlaceholder = "#title"
	timePlaceholder  = "#time"
)

// ErrNoTitle is returned when input ends before a title line is read.
var ErrNoTitle = errors.New("no title provided")

// Post is a title paired with the timestamp captured for it.
type Post struct {
	Title     string
	Timestamp string
}

// New captures t as the post's timestamp.
func New(title string, t time.Time) Post {
	return Post{Title: title, Timestamp: Timestamp(t)}
}

// Timestamp formats t in local time as YYYY-MM-DD HH:MM:SS.
func Timestamp(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

// DatePart returns the date portion of a timestamp.
func DatePart(ts string) string {
	date, _, _ := strings.Cut(ts, " ")
	return date
}

// Render fills the template in a single pass, so placeholder text inside
// title is written literally. The offset is a label appended to ts.
func Render(title, ts, offset string) string {
	r := strings.NewReplacer(titlePlaceholder, title, timePlaceholder, ts+" "+offset)
	return r.Replace(Template)
}

// Filename derives the post file name, e.g. 2024-03-05-Hello-World.markdown.
func Filename(title, ts string) string {
	return DatePart(ts) + "-" + strings.ReplaceAll(title, " ", "-") + Extension
}

// Path appends the post file name to dir. The result is not cleaned, so
// separators or ".." inside the title resolve below dir/<date>-... and fail
// when that directory is missing.
func Path(dir, title, ts string) string {
	return dir + "/" + Filename(title, ts)
}

// Render renders the post's header.
func (p Post) Render(offset string) string {
	return Render(p.Title, p.Timestamp, offset)
}

// Path returns where the post is written inside dir.
func (p Post) Path(dir string) string {
	return Path(dir, p.Title, p.Timestamp)
}

// Write creates or truncates path and writes content to it. The parent
// directory must already exist.
func Write(path, content string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating post: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing post: %w", cerr)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing post: %w", err)
	}
	return nil
}
