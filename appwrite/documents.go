package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// DocumentList is the raw result of a collection query: the documents plus
// the total count of documents matching the filters (ignoring pagination).
type DocumentList struct {
	Total     int               `json:"total"`
	Documents []json.RawMessage `json:"documents"`
}

// ListDocuments queries a collection with the given filter/sort/pagination
// queries and returns the raw matching documents.
func (c *Client) ListDocuments(ctx context.Context, collectionID string, queries ...Query) (DocumentList, error) {
	params := url.Values{}
	for _, q := range queries {
		params.Add("queries[]", q.encode())
	}

	path := fmt.Sprintf("/databases/%s/collections/%s/documents", c.databaseID, collectionID)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list DocumentList
	if err := c.do(ctx, "GET", path, nil, &list); err != nil {
		return DocumentList{}, err
	}
	return list, nil
}

// GetDocument fetches a single document by ID.
func (c *Client) GetDocument(ctx context.Context, collectionID, documentID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents/%s", c.databaseID, collectionID, documentID)

	var doc json.RawMessage
	if err := c.do(ctx, "GET", path, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

type createDocumentRequest struct {
	DocumentID string `json:"documentId"`
	Data       any    `json:"data"`
}

type updateDocumentRequest struct {
	Data any `json:"data"`
}

// CreateDocument inserts a new document with a server-side generated unique ID
// and returns the created document.
func (c *Client) CreateDocument(ctx context.Context, collectionID string, data any) (json.RawMessage, error) {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents", c.databaseID, collectionID)

	payload := createDocumentRequest{
		DocumentID: UniqueID(),
		Data:       data,
	}

	var doc json.RawMessage
	if err := c.do(ctx, "POST", path, payload, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateDocument patches an existing document and returns the updated
// document. Callers are expected to have stripped system-managed fields from
// data; the store rejects payloads that try to set them.
func (c *Client) UpdateDocument(ctx context.Context, collectionID, documentID string, data any) (json.RawMessage, error) {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents/%s", c.databaseID, collectionID, documentID)

	var doc json.RawMessage
	if err := c.do(ctx, "PATCH", path, updateDocumentRequest{Data: data}, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDocument removes a document by ID.
func (c *Client) DeleteDocument(ctx context.Context, collectionID, documentID string) error {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents/%s", c.databaseID, collectionID, documentID)
	return c.do(ctx, "DELETE", path, nil, nil)
}
