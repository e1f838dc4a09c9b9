package convert

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"roflow/internal/util"
)

// APIConverter calls a hosted conversion endpoint: the PDF is uploaded as
// multipart form data and the converted workbook comes back base64-encoded
// in the response payload.
type APIConverter struct {
	base   string
	token  string
	client *http.Client
}

func NewAPIConverter(base, token string) *APIConverter {
	return &APIConverter{
		base:   base,
		token:  token,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *APIConverter) ConvertToXLSX(ctx context.Context, pdfPath, outPath string) error {
	if c.token == "" {
		return fmt.Errorf("%w: conversion API token not configured", util.ErrConversionFailed)
	}

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("File", filepath.Base(pdfPath))
	if err != nil {
		return fmt.Errorf("build multipart form: %w", err)
	}
	src, err := os.Open(pdfPath)
	if err != nil {
		return fmt.Errorf("open pdf for conversion: %w", err)
	}
	defer src.Close()
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy pdf into form: %w", err)
	}
	if err := mw.WriteField("StoreFile", "false"); err != nil {
		return fmt.Errorf("build multipart form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart form: %w", err)
	}

	url := c.base + "/convert/pdf/to/xlsx?Token=" + c.token
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("build conversion request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrConversionFailed, err)
	}
	defer resp.Body.Close()
	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d: %s", util.ErrConversionFailed, resp.StatusCode, truncate(payload, 300))
	}

	var parsed struct {
		Files []struct {
			FileName string `json:"FileName"`
			FileData string `json:"FileData"`
		} `json:"Files"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return fmt.Errorf("decode conversion response: %w", err)
	}
	if len(parsed.Files) == 0 || parsed.Files[0].FileData == "" {
		return fmt.Errorf("%w: response carried no file data", util.ErrConversionFailed)
	}
	data, err := base64.StdEncoding.DecodeString(parsed.Files[0].FileData)
	if err != nil {
		return fmt.Errorf("decode converted workbook: %w", err)
	}
	if err := util.EnsureDir(filepath.Dir(outPath)); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write converted workbook: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
