package main

import (
	"os"
	"path/filepath"
	"testing"
)

// resetFlags restores global flag state after each test.
func resetFlags(t *testing.T) {
	t.Helper()
	orig := struct{ uri, user, pass, db string }{flagURI, flagUsername, flagPassword, flagDatabase}
	t.Cleanup(func() {
		flagURI = orig.uri
		flagUsername = orig.user
		flagPassword = orig.pass
		flagDatabase = orig.db
	})
	flagURI = defaultURI
	flagUsername = defaultUsername
	flagPassword = ""
	flagDatabase = ""
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VUEGRAPH_NEO4J_URI",
		"VUEGRAPH_NEO4J_USERNAME",
		"VUEGRAPH_NEO4J_PASSWORD",
		"VUEGRAPH_NEO4J_DATABASE",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	home := os.Getenv("HOME")
	if err := os.WriteFile(filepath.Join(home, ".vuegraph.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	resolveConfig()

	if flagURI != defaultURI || flagUsername != defaultUsername {
		t.Errorf("expected defaults, got uri=%q user=%q", flagURI, flagUsername)
	}
	if flagPassword != "" || flagDatabase != "" {
		t.Error("expected empty password and database")
	}
}

func TestResolveConfigFromEnv(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("VUEGRAPH_NEO4J_URI", "neo4j://env-host:7687")
	t.Setenv("VUEGRAPH_NEO4J_PASSWORD", "env-pass")

	resolveConfig()

	if flagURI != "neo4j://env-host:7687" {
		t.Errorf("flagURI: got %q", flagURI)
	}
	if flagPassword != "env-pass" {
		t.Errorf("flagPassword: got %q", flagPassword)
	}
}

func TestResolveConfigFlagWinsOverEnv(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("VUEGRAPH_NEO4J_URI", "neo4j://env-host:7687")

	flagURI = "bolt://explicit:9999"
	resolveConfig()

	if flagURI != "bolt://explicit:9999" {
		t.Errorf("explicit flag should win; got %q", flagURI)
	}
}

func TestResolveConfigFromFile(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	writeConfigFile(t, "uri: bolt://file-host:7687\nusername: fileuser\npassword: file-pass\ndatabase: maps\n")

	resolveConfig()

	if flagURI != "bolt://file-host:7687" || flagUsername != "fileuser" {
		t.Errorf("file config not applied: uri=%q user=%q", flagURI, flagUsername)
	}
	if flagPassword != "file-pass" || flagDatabase != "maps" {
		t.Errorf("file config not applied: pass=%q db=%q", flagPassword, flagDatabase)
	}
}

func TestResolveConfigEnvWinsOverFile(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("VUEGRAPH_NEO4J_PASSWORD", "env-pass")
	writeConfigFile(t, "password: file-pass\n")

	resolveConfig()

	if flagPassword != "env-pass" {
		t.Errorf("env should win over file; got %q", flagPassword)
	}
}

func TestResolveConfigInvalidYAML(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	writeConfigFile(t, ":::not-yaml:::")

	resolveConfig() // must not panic

	if flagURI != defaultURI {
		t.Errorf("flagURI should stay default on bad YAML; got %q", flagURI)
	}
}

func TestConnConfig(t *testing.T) {
	resetFlags(t)
	flagURI = "bolt://somewhere:7687"
	flagUsername = "svc"
	flagPassword = "pw"
	flagDatabase = "maps"

	cfg := connConfig()
	if cfg.URI != "bolt://somewhere:7687" || cfg.Username != "svc" || cfg.Database != "maps" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Password.Value() != "pw" {
		t.Error("password not carried into config")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
