package qdrant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bank-policy-assistant/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		path := r.URL.Path

		if r.Method == http.MethodPost && strings.Contains(path, "/points/search") {
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"result": [
					{
						"id": "9b2f1d6e-0000-0000-0000-000000000001",
						"score": 0.93,
						"payload": {"text": "Annual leave entitlement is 30 days per year.", "chunk_index": 0, "source": "policy_manual.txt"}
					}
				],
				"status": "ok",
				"time": 0.02
			}`))
			return
		}

		if r.Method == http.MethodPut && strings.HasSuffix(path, "/points") {
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 {
				if val, ok := req.Points[0].Payload["cause_500"]; ok && val == true {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		if r.Method == http.MethodPut && strings.Contains(path, "/collections/") {
			w.WriteHeader(http.StatusCreated)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL)

	t.Run("CreateCollection", func(t *testing.T) {
		err := client.CreateCollection(context.Background(), qdrant.CreateCollectionRequest{
			Name: "bank_policies",
			Vectors: qdrant.VectorConfig{
				Size:     1024,
				Distance: "Cosine",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Success", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "bank_policies", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{
				{
					ID:     "9b2f1d6e-0000-0000-0000-000000000001",
					Vector: []float32{0.1, 0.2},
					Payload: map[string]interface{}{
						"text":        "Annual leave entitlement is 30 days per year.",
						"chunk_index": 0,
						"source":      "policy_manual.txt",
					},
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Error", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "bank_policies", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{
				{
					ID:      "9b2f1d6e-0000-0000-0000-000000000002",
					Vector:  []float32{0.1, 0.2},
					Payload: map[string]interface{}{"cause_500": true},
				},
			},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("SearchPoints Success", func(t *testing.T) {
		resp, err := client.SearchPoints(context.Background(), "bank_policies", qdrant.SearchRequest{
			Vector:      []float32{0.1, 0.2},
			Limit:       3,
			WithPayload: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 {
			t.Fatalf("expected 1 result, got %d", len(resp.Result))
		}
		hit := resp.Result[0]
		if hit.Score != 0.93 {
			t.Errorf("unexpected score: %v", hit.Score)
		}
		if hit.Payload["text"] != "Annual leave entitlement is 30 days per year." {
			t.Errorf("unexpected payload text: %v", hit.Payload["text"])
		}
	})

	t.Run("SearchPoints Error", func(t *testing.T) {
		_, err := client.SearchPoints(context.Background(), "bank_policies", qdrant.SearchRequest{
			Limit: 999,
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Context Cancelation Error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // cancel immediately

		err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{Name: "bank_policies"})
		if err == nil {
			t.Errorf("expected error on canceled context")
		}

		_, err = client.SearchPoints(ctx, "bank_policies", qdrant.SearchRequest{})
		if err == nil {
			t.Errorf("expected error on canceled context")
		}
	})
}
