package memory

import (
	"testing"

	"github.com/sleeperview/sleeperview/internal/models"
)

func TestRepositoryEmpty(t *testing.T) {
	r := NewRepository()

	if _, ok := r.GetPlayers(); ok {
		t.Error("empty repository reported a snapshot")
	}
	if !r.FetchedAt().IsZero() {
		t.Error("FetchedAt set before any save")
	}
}

func TestRepositorySaveAndGet(t *testing.T) {
	r := NewRepository()
	players := map[string]models.Player{
		"P1": {ID: "P1", Name: "Tom Brady", Team: "FA"},
	}

	r.SavePlayers(players)

	got, ok := r.GetPlayers()
	if !ok {
		t.Fatal("snapshot missing after save")
	}
	if got["P1"].Name != "Tom Brady" {
		t.Errorf("players = %+v", got)
	}
	if r.FetchedAt().IsZero() {
		t.Error("FetchedAt not set")
	}
}
