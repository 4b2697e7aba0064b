package postgre

import (
	"reflect"
	"testing"

	repo "shareit/internal/user/repository"
)

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	t.Run("By ID", func(t *testing.T) {
		mods, args := r.buildGetOneQuery(repo.GetOneUserOptions{ID: 7})
		if mods != "id = $1" {
			t.Errorf("unexpected mods %q", mods)
		}
		if !reflect.DeepEqual(args, []any{int64(7)}) {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("By ID And Email", func(t *testing.T) {
		mods, args := r.buildGetOneQuery(repo.GetOneUserOptions{ID: 7, Email: "a@b.c"})
		if mods != "id = $1 AND email = $2" {
			t.Errorf("unexpected mods %q", mods)
		}
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d", len(args))
		}
	})

	t.Run("No Filter", func(t *testing.T) {
		mods, args := r.buildGetOneQuery(repo.GetOneUserOptions{})
		if mods != "1=1" || len(args) != 0 {
			t.Errorf("unexpected %q %v", mods, args)
		}
	})
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	mods, args := r.buildListQuery(repo.ListUsersOptions{Limit: 10, Offset: 20})
	if mods != "ORDER BY id LIMIT $1 OFFSET $2" {
		t.Errorf("unexpected mods %q", mods)
	}
	if !reflect.DeepEqual(args, []any{10, 20}) {
		t.Errorf("unexpected args %v", args)
	}

	mods, args = r.buildListQuery(repo.ListUsersOptions{})
	if mods != "ORDER BY id" || len(args) != 0 {
		t.Errorf("unexpected %q %v", mods, args)
	}
}
