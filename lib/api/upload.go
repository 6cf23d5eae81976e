// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/zeebo/blake3"
)

// UploadGalleryImage uploads image bytes plus metadata as a multipart
// form — the one place the client overrides the JSON content-type
// default. The image's blake3 digest travels in both the form and the
// X-Content-Digest header so the server can verify the upload arrived
// intact. Returns the created gallery record.
func (client *Client) UploadGalleryImage(ctx context.Context, title, caption, filename string, image io.Reader) (GalleryImage, error) {
	var created GalleryImage

	content, err := io.ReadAll(image)
	if err != nil {
		return created, fmt.Errorf("reading image: %w", err)
	}
	digest := blake3.Sum256(content)
	digestHex := hex.EncodeToString(digest[:])

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("title", title); err != nil {
		return created, fmt.Errorf("building form: %w", err)
	}
	if caption != "" {
		if err := form.WriteField("caption", caption); err != nil {
			return created, fmt.Errorf("building form: %w", err)
		}
	}
	if err := form.WriteField("digest", digestHex); err != nil {
		return created, fmt.Errorf("building form: %w", err)
	}
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return created, fmt.Errorf("building form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return created, fmt.Errorf("building form: %w", err)
	}
	if err := form.Close(); err != nil {
		return created, fmt.Errorf("building form: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+PathGallery, &body)
	if err != nil {
		return created, err
	}
	request.Header.Set("Content-Type", form.FormDataContentType())
	request.Header.Set("X-Content-Digest", "blake3:"+digestHex)
	client.authorize(request)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return created, fmt.Errorf("upload %s: %w", filename, err)
	}
	err = decodeInto(response, "upload gallery image", &created)
	return created, err
}
