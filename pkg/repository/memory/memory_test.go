package memory_test

import (
	"testing"

	"github.com/javagrunt/javagrunt/pkg/repository/memory"
	"github.com/javagrunt/javagrunt/pkg/repository/testhelper"
)

func TestMemoryStore(t *testing.T) {
	testhelper.TestAll(t, memory.New())
}
