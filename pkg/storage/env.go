package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// varPattern matches {{VAR_NAME}} placeholders.
var varPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// EnvChain resolves variables for a render or replay: the loaded
// environment file is consulted first, the process environment second.
type EnvChain struct {
	env *Environment
}

// NewEnvChain builds a chain over env. A nil env leaves only the
// process environment.
func NewEnvChain(env *Environment) *EnvChain {
	return &EnvChain{env: env}
}

// EnvironmentVariable returns the value of the named variable and
// whether it exists anywhere in the chain.
func (c *EnvChain) EnvironmentVariable(id string) (string, bool) {
	if c.env != nil {
		if value, ok := c.env.Variables[id]; ok {
			return value, true
		}
	}
	if value, ok := os.LookupEnv(id); ok {
		return value, true
	}
	return "", false
}

// Substitute replaces {{VAR}} placeholders in text. Unknown variables
// keep their placeholder.
func (c *EnvChain) Substitute(text string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.TrimSpace(varPattern.FindStringSubmatch(match)[1])
		if value, ok := c.EnvironmentVariable(name); ok {
			return value
		}
		return match
	})
}

// ApplyEnvironment returns a copy of req with {{VAR}} placeholders
// substituted in the URL, headers, parameters, body and auth fields.
func (c *EnvChain) ApplyEnvironment(req *Request) *Request {
	applied := *req
	applied.URL = c.Substitute(req.URL)

	if len(req.Headers) > 0 {
		applied.Headers = make([]Header, len(req.Headers))
		for i, h := range req.Headers {
			applied.Headers[i] = Header{Name: h.Name, Value: c.Substitute(h.Value)}
		}
	}
	if len(req.Params) > 0 {
		applied.Params = make([]Param, len(req.Params))
		for i, p := range req.Params {
			applied.Params[i] = Param{Name: p.Name, Value: c.Substitute(p.Value)}
		}
	}
	if req.Body != nil {
		body := *req.Body
		body.JSON = c.Substitute(body.JSON)
		body.Form = c.Substitute(body.Form)
		body.Text = c.Substitute(body.Text)
		if body.GraphQL != nil {
			gql := *body.GraphQL
			gql.Query = c.Substitute(gql.Query)
			gql.Variables = c.Substitute(gql.Variables)
			body.GraphQL = &gql
		}
		applied.Body = &body
	}
	if req.Auth != nil {
		auth := *req.Auth
		auth.Token = c.Substitute(auth.Token)
		auth.Username = c.Substitute(auth.Username)
		auth.Password = c.Substitute(auth.Password)
		auth.ClientID = c.Substitute(auth.ClientID)
		auth.ClientSecret = c.Substitute(auth.ClientSecret)
		auth.TokenURL = c.Substitute(auth.TokenURL)
		applied.Auth = &auth
	}
	return &applied
}

// GetEnvironmentsDir returns the directory holding environment files.
func GetEnvironmentsDir() string {
	return filepath.Join(WorkspaceDirName, "environments")
}

// LoadEnvironment loads the named environment from the workspace.
func LoadEnvironment(name string) (*Environment, error) {
	path := filepath.Join(GetEnvironmentsDir(), name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}

	var env Environment
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse environment YAML: %w", err)
	}
	if env.Name == "" {
		env.Name = name
	}
	if env.Variables == nil {
		env.Variables = map[string]string{}
	}
	return &env, nil
}

// SaveEnvironment writes env to the workspace under its name.
func SaveEnvironment(env *Environment) error {
	if err := os.MkdirAll(GetEnvironmentsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create environments directory: %w", err)
	}

	data, err := yaml.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal environment: %w", err)
	}

	path := filepath.Join(GetEnvironmentsDir(), env.Name+".yaml")
	return os.WriteFile(path, data, 0644)
}

// ListEnvironments lists the names of all saved environments.
func ListEnvironments() ([]string, error) {
	envDir := GetEnvironmentsDir()
	if _, err := os.Stat(envDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read environments directory: %w", err)
	}

	var envs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		envs = append(envs, strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
	}
	return envs, nil
}
