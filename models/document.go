package models

// systemFields are the store-managed document attributes that must never be
// forwarded on update calls; the store rejects payloads that try to set them.
var systemFields = []string{
	"$id",
	"$createdAt",
	"$updatedAt",
	"$permissions",
	"$databaseId",
	"$collectionId",
	"$sequence",
}

// StripSystemFields removes store-managed attributes from a decoded update
// payload in place and returns it. Admin clients routinely echo back full
// documents when editing, so update payloads usually contain these fields.
func StripSystemFields(data map[string]any) map[string]any {
	for _, field := range systemFields {
		delete(data, field)
	}
	return data
}
