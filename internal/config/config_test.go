package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromName(t *testing.T) {
	c := FromName("", "cellar")
	if c.DBPath != "cellar.db" || c.CSVPath != "cellar.csv" {
		t.Errorf("unexpected paths: %+v", c)
	}

	c = FromName("/data", "test")
	if c.DBPath != filepath.Join("/data", "test.db") {
		t.Errorf("DBPath = %q", c.DBPath)
	}
	if c.CSVPath != filepath.Join("/data", "test.csv") {
		t.Errorf("CSVPath = %q", c.CSVPath)
	}
}

func TestResolveCellar_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvCellar, "")

	c, err := ResolveCellar("")
	if err != nil {
		t.Fatalf("ResolveCellar failed: %v", err)
	}
	if c.Name != DefaultCellarName {
		t.Errorf("expected default cellar name, got %q", c.Name)
	}
}

func TestResolveCellar_FlagWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvCellar, "fromenv")

	c, err := ResolveCellar("fromflag")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "fromflag" {
		t.Errorf("flag must take precedence, got %q", c.Name)
	}
}

func TestResolveCellar_EnvOverGlobal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvCellar, "fromenv")

	g := &Global{DefaultCellar: "fromconfig"}
	if err := g.Save(); err != nil {
		t.Fatal(err)
	}

	c, err := ResolveCellar("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "fromenv" {
		t.Errorf("env must beat global config, got %q", c.Name)
	}
}

func TestResolveCellar_GlobalConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvCellar, "")

	g := &Global{DefaultCellar: "mycellar", DataDir: "/srv/wine"}
	if err := g.Save(); err != nil {
		t.Fatal(err)
	}

	c, err := ResolveCellar("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "mycellar" {
		t.Errorf("expected name from global config, got %q", c.Name)
	}
	if c.DBPath != filepath.Join("/srv/wine", "mycellar.db") {
		t.Errorf("data dir not applied: %q", c.DBPath)
	}
}

func TestLoadGlobal_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	g, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if g.DefaultCellar != "" || g.DataDir != "" {
		t.Errorf("expected empty config, got %+v", g)
	}
}

func TestGlobal_SaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	g := &Global{DefaultCellar: "weekend", DataDir: "/tmp/wines"}
	if err := g.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if loaded.DefaultCellar != "weekend" || loaded.DataDir != "/tmp/wines" {
		t.Errorf("round trip lost data: %+v", loaded)
	}

	if _, err := os.Stat(GlobalPath()); err != nil {
		t.Errorf("config file missing: %v", err)
	}
}
