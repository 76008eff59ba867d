package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFields(t *testing.T) {
	fields := []string{"01/01/2023 10:00:00", "Paid", "Box8 Order #1", "", "lunch", "200.00", "", "SUCCESS"}

	rec, err := FromFields(fields)
	require.NoError(t, err)

	assert.Equal(t, "01/01/2023 10:00:00", rec.Timestamp)
	assert.Equal(t, "Paid", rec.Activity)
	assert.Equal(t, "Box8 Order #1", rec.Identifier)
	assert.Equal(t, "lunch", rec.Comment)
	assert.Equal(t, "200.00", rec.Debit)
	assert.Equal(t, "", rec.Credit)
	assert.Equal(t, "SUCCESS", rec.Status)
}

func TestFromFields_StatusIsLastField(t *testing.T) {
	fields := []string{"01/01/2023 10:00:00", "Paid", "id", "", "", "", "5", "extra", "PENDING"}

	rec, err := FromFields(fields)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", rec.Status)
	assert.Equal(t, "5", rec.Credit)
}

func TestFromFields_Short(t *testing.T) {
	_, err := FromFields([]string{"a", "b", "c"})
	assert.ErrorIs(t, err, ErrShortRecord)
	assert.Contains(t, err.Error(), "got 3")
}

func TestReverse(t *testing.T) {
	records := []Record{{Identifier: "3"}, {Identifier: "2"}, {Identifier: "1"}}

	Reverse(records)

	assert.Equal(t, "1", records[0].Identifier)
	assert.Equal(t, "2", records[1].Identifier)
	assert.Equal(t, "3", records[2].Identifier)

	Reverse(nil)
}
