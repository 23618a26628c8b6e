package journal_test

import (
	"testing"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/hamlet"
	"github.com/gemdeck/gemdeck/journal"
)

func TestJournalCanBeCalled(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	must.Equal("foo bar", journal.Unify("  foo  \t  \r\n   bar  "))

	must.Nil(journal.Post("launch", "profile-1", "from journal/journal_test.go"))
	events, err := journal.Events()
	must.Nil(err)
	wont.Nil(events)
	must.True(len(events) > 0)
	must.Nil(journal.Post("exit", "profile-1", "from journal/journal_test.go"))
	second, err := journal.Events()
	must.Nil(err)
	must.True(len(second) > len(events))
	must.Equal("launch", second[0].Event)
	must.Equal("profile-1", second[0].Identity)
}

func TestMissingJournalIsEmpty(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	events, err := journal.Events()
	must.Nil(err)
	must.Equal(0, len(events))
}
