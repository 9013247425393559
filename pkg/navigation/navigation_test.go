package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItems_Order(t *testing.T) {
	var labels []string
	for _, it := range Items("/") {
		labels = append(labels, it.Label)
		assert.False(t, it.Active)
	}
	assert.Equal(t, []string{"Dashboard", "Job Posting", "Job Types", "Applications", "Users"}, labels)
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		href, path string
		want       bool
	}{
		{"/dashboard", "/dashboard", true},
		{"/applications", "/applications/12/report", true},
		{"/job-postings", "/job-postings/new", true},
		{"/job-type", "/job-types", false},
		{"/users", "/dashboard", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsActive(tt.href, tt.path), "%s vs %s", tt.href, tt.path)
	}
}

func TestItems_MarksOnlyOne(t *testing.T) {
	active := 0
	for _, it := range Items("/job-postings/3/edit") {
		if it.Active {
			active++
			assert.Equal(t, "Job Posting", it.Label)
		}
	}
	assert.Equal(t, 1, active)
}
