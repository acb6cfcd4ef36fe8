package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCourseDescription_Priority(t *testing.T) {
	c := &ExploreCourse{
		ShortDescription: strPtr("short"),
		Description:      strPtr("medium"),
		FullDescription:  strPtr("full"),
	}
	assert.Equal(t, "full", CourseDescription(c))

	c.FullDescription = nil
	assert.Equal(t, "medium", CourseDescription(c))

	c.Description = strPtr("   ")
	assert.Equal(t, "short", CourseDescription(c))
}

func TestCourseDescription_Truncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	c := &ExploreCourse{FullDescription: &long}

	got := CourseDescription(c)
	assert.Len(t, got, 153)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestCourseDescription_TechnologyFallback(t *testing.T) {
	c := &ExploreCourse{Technologies: []Technology{
		{Name: "Go"}, {Name: "MySQL"}, {Name: "Redis"},
	}}
	got := CourseDescription(c)
	assert.Contains(t, got, "Go and MySQL")
	assert.NotContains(t, got, "Redis")
}

func TestCourseDescription_GenericFallback(t *testing.T) {
	got := CourseDescription(&ExploreCourse{})
	assert.Contains(t, got, "this technology")
}

func TestHasValidVideo(t *testing.T) {
	w := &Workshop{}
	assert.False(t, w.HasValidVideo())

	w.Video = strPtr("   ")
	assert.False(t, w.HasValidVideo())

	w.Video = strPtr("https://cdn.example.com/intro.mp4")
	assert.True(t, w.HasValidVideo())
}
