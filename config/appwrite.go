package config

import (
	"errors"
	"fmt"
	"strings"
)

// Appwrite holds the connection settings for the hosted document database and
// its storage buckets. Values are read once at startup and validated before
// any client is constructed.
type Appwrite struct {
	Endpoint  string
	ProjectID string
	APIKey    string

	DatabaseID         string
	ProjectsCollection string
	SkillsCollection   string
	MessagesCollection string

	AssetsBucket string
}

// NewAppwrite reads the Appwrite settings from a config map populated by New().
func NewAppwrite(c map[string]string) Appwrite {
	return Appwrite{
		Endpoint:           strings.TrimRight(GetString(c, "APPWRITE_ENDPOINT", ""), "/"),
		ProjectID:          GetString(c, "APPWRITE_PROJECT_ID", ""),
		APIKey:             GetString(c, "APPWRITE_API_KEY", ""),
		DatabaseID:         GetString(c, "APPWRITE_DATABASE_ID", ""),
		ProjectsCollection: GetString(c, "APPWRITE_COLLECTION_PROJECTS", "projects"),
		SkillsCollection:   GetString(c, "APPWRITE_COLLECTION_SKILLS", "skills"),
		MessagesCollection: GetString(c, "APPWRITE_COLLECTION_MESSAGES", "messages"),
		AssetsBucket:       GetString(c, "APPWRITE_BUCKET_PROJECT_ASSETS", "project-assets"),
	}
}

// Validate fails fast on settings without which no store call can succeed.
// The API key is only required for mutation paths, so it is not checked here.
func (a Appwrite) Validate() error {
	var missing []string
	if a.Endpoint == "" {
		missing = append(missing, "APPWRITE_ENDPOINT")
	}
	if a.ProjectID == "" {
		missing = append(missing, "APPWRITE_PROJECT_ID")
	}
	if a.DatabaseID == "" {
		missing = append(missing, "APPWRITE_DATABASE_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if !strings.HasPrefix(a.Endpoint, "http://") && !strings.HasPrefix(a.Endpoint, "https://") {
		return errors.New("APPWRITE_ENDPOINT must be an http(s) URL")
	}
	return nil
}
