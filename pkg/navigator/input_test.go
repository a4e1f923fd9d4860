package navigator

import (
	"testing"

	"github.com/filetug/voltug/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	for text, want := range map[string]int{"0": 0, " 12 ": 12, "123": 123, "007": 7} {
		n, err := ParseChoice(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, n, text)
	}

	_, err := ParseChoice("  ")
	assert.ErrorIs(t, err, ErrEmptyChoice)

	for _, text := range []string{"abc", "-1", "1.5", "1 2"} {
		_, err = ParseChoice(text)
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr, text)
		assert.Equal(t, "choice", inputErr.Kind)
	}
}

func TestDecode(t *testing.T) {
	listing := Listing{
		Path: `C:\T`,
		Folders: []Entry{
			{Index: 1, Name: "a", Kind: files.KindFolder},
			{Index: 2, Name: "b", Kind: files.KindFolder},
		},
		Files: []Entry{
			{Index: 3, Name: "c.txt", Kind: files.KindFile},
		},
	}

	s, err := Decode(listing, 0)
	require.NoError(t, err)
	assert.Equal(t, ActionAscend, s.Action)

	s, err = Decode(listing, 2)
	require.NoError(t, err)
	assert.Equal(t, ActionDescend, s.Action)
	assert.Equal(t, "b", s.Entry.Name)

	s, err = Decode(listing, 3)
	require.NoError(t, err)
	assert.Equal(t, ActionOpenFile, s.Action)
	assert.Equal(t, "c.txt", s.Entry.Name)

	_, err = Decode(listing, 4)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, `invalid choice "4": expected 0..3`, err.Error())

	_, err = Decode(Listing{}, 1)
	assert.ErrorAs(t, err, &inputErr)
}

func TestDecode_ManyEntries(t *testing.T) {
	var listing Listing
	for i := 1; i <= 150; i++ {
		listing.Files = append(listing.Files, Entry{Index: i, Kind: files.KindFile})
	}
	n, err := ParseChoice("120")
	require.NoError(t, err)
	s, err := Decode(listing, n)
	require.NoError(t, err)
	assert.Equal(t, 120, s.Entry.Index)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "ascend", ActionAscend.String())
	assert.Equal(t, "descend", ActionDescend.String())
	assert.Equal(t, "open_file", ActionOpenFile.String())
	assert.Equal(t, "unknown", Action(9).String())
	assert.Equal(t, "awaiting_volume", PhaseAwaitingVolume.String())
	assert.Equal(t, "in_folder", PhaseInFolder.String())
	assert.Equal(t, "terminated", PhaseTerminated.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
