package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/artem13815/smarthire-admin/pkg/application"
)

func TestApplications(t *testing.T) {
	data, err := Applications([]application.Application{
		{UserID: 1, UserCVID: 10, Name: "Ann", Email: "ann@x.io", JobPosition: "Go Dev", JobType: "Backend", CVURL: "https://cv/10", Feedback: "Strong Go skills."},
		{UserID: 2, UserCVID: 11, Name: "Bob", Email: "bob@x.io", JobPosition: "QA", JobType: "Testing"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(applicationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Applicant", "Email", "Job Position", "Job Type", "CV", "Feedback"}, rows[0])
	assert.Equal(t, []string{"Ann", "ann@x.io", "Go Dev", "Backend", "https://cv/10", "Strong Go skills."}, rows[1])
	require.GreaterOrEqual(t, len(rows[2]), 4)
	assert.Equal(t, []string{"Bob", "bob@x.io", "QA", "Testing"}, rows[2][:4])

	link, target, err := f.GetCellHyperLink(applicationsSheet, "E2")
	require.NoError(t, err)
	assert.True(t, link)
	assert.Equal(t, "https://cv/10", target)
}

func TestApplications_Empty(t *testing.T) {
	data, err := Applications(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(applicationsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
