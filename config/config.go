package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/apikit/apiclient"
	"github.com/kbukum/apikit/auth"
	"github.com/kbukum/apikit/codec"
	"github.com/kbukum/apikit/logger"
)

// Auth type names accepted in configuration files.
const (
	AuthNone   = "none"
	AuthBasic  = "basic"
	AuthHeader = "header"
	AuthQuery  = "query"
	AuthJWT    = "jwt"
)

// AuthFile declares the authentication method of a client.
type AuthFile struct {
	// Type is one of none, basic, header, query, jwt. Defaults to none.
	Type string `yaml:"type" mapstructure:"type" validate:"omitempty,oneof=none basic header query jwt"`
	// Token is the credential for header and query auth.
	Token string `yaml:"token" mapstructure:"token"`
	// Parameter is the header or query parameter name.
	Parameter string `yaml:"parameter" mapstructure:"parameter"`
	// Realm is the header scheme prefix (header auth).
	Realm string `yaml:"realm" mapstructure:"realm"`
	// Username and Password configure basic auth.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	// Secret, Issuer, and TTL configure jwt auth.
	Secret string        `yaml:"secret" mapstructure:"secret"`
	Issuer string        `yaml:"issuer" mapstructure:"issuer"`
	TTL    time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// File is the on-disk client configuration.
type File struct {
	BaseURL string            `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration     `yaml:"timeout" mapstructure:"timeout"`
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
	Params  map[string]string `yaml:"params" mapstructure:"params"`
	Auth    AuthFile          `yaml:"auth" mapstructure:"auth"`
	Logging logger.Config     `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (f *File) ApplyDefaults() {
	if f.Auth.Type == "" {
		f.Auth.Type = AuthNone
	}
	f.Logging.ApplyDefaults()
}

// Validate checks the configuration, including the auth-type specific
// required fields.
func (f *File) Validate() error {
	if err := validator.New().Struct(f); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	switch f.Auth.Type {
	case AuthBasic:
		if f.Auth.Username == "" {
			return fmt.Errorf("config: auth.username is required for basic auth")
		}
	case AuthHeader:
		if f.Auth.Token == "" {
			return fmt.Errorf("config: auth.token is required for header auth")
		}
	case AuthQuery:
		if f.Auth.Token == "" || f.Auth.Parameter == "" {
			return fmt.Errorf("config: auth.token and auth.parameter are required for query auth")
		}
	case AuthJWT:
		if f.Auth.Secret == "" {
			return fmt.Errorf("config: auth.secret is required for jwt auth")
		}
	}
	return f.Logging.Validate()
}

// Build produces an apiclient.Config with the declared authentication
// method and JSON formatting.
func (f *File) Build() (apiclient.Config, error) {
	method, err := f.buildAuth()
	if err != nil {
		return apiclient.Config{}, err
	}
	return apiclient.Config{
		BaseURL:          f.BaseURL,
		Timeout:          f.Timeout,
		Headers:          f.Headers,
		Params:           f.Params,
		Authentication:   method,
		ResponseHandler:  codec.JSONHandler{},
		RequestFormatter: codec.JSONFormatter{},
	}, nil
}

func (f *File) buildAuth() (auth.Method, error) {
	switch f.Auth.Type {
	case AuthNone:
		return auth.None{}, nil
	case AuthBasic:
		return auth.Basic{Username: f.Auth.Username, Password: f.Auth.Password}, nil
	case AuthHeader:
		return auth.Header{Token: f.Auth.Token, Parameter: f.Auth.Parameter, Realm: f.Auth.Realm}, nil
	case AuthQuery:
		return auth.QueryParameter{Parameter: f.Auth.Parameter, Token: f.Auth.Token}, nil
	case AuthJWT:
		opts := []auth.JWTOption{}
		if f.Auth.Issuer != "" {
			opts = append(opts, auth.WithIssuer(f.Auth.Issuer))
		}
		if f.Auth.TTL > 0 {
			opts = append(opts, auth.WithTTL(f.Auth.TTL))
		}
		return auth.NewJWT(f.Auth.Secret, opts...)
	default:
		return nil, fmt.Errorf("config: unknown auth type %q", f.Auth.Type)
	}
}
