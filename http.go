/*
Copyright 2013 Google Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ocache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// HTTPPeer is the server side of the peer HTTP surface (spec.md §6):
// an http.Handler that accepts GET /<group>/<key>, splitting the URL
// path on "/" and dropping empty segments, and serves the raw value
// bytes on a hit.
type HTTPPeer struct {
	registry *Registry
	log      logrus.FieldLogger
}

// NewHTTPPeer wraps registry as an http.Handler.
func NewHTTPPeer(registry *Registry, log logrus.FieldLogger) *HTTPPeer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HTTPPeer{registry: registry, log: log}
}

func (h *HTTPPeer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := splitNonEmpty(r.URL.Path)
	if len(parts) != 2 {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	group, key := parts[0], parts[1]

	value, err := h.registry.Get(group, key)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "No such") {
			status = http.StatusNotFound
		}
		h.log.Warnf("serving %s/%s failed: %v", group, key, err)
		http.Error(w, err.Error(), status)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := value.WriteTo(w); err != nil {
		h.log.Warnf("writing response for %s/%s: %v", group, key, err)
	}
}

// splitNonEmpty splits path on "/" and removes empty segments, per
// spec.md §6's exact parsing rule.
func splitNonEmpty(path string) []string {
	raw := strings.Split(path, "/")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// HTTPPeerClient is the client side of peer-to-peer traffic: a
// PeerClient that issues GET <base_url>/<group>/<key> against a
// remote peer, grounded on the teacher's httpGetter (including its
// buffer-pooling idiom).
type HTTPPeerClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPeerClient builds a client targeting baseURL, e.g.
// "http://127.0.0.1:1025". httpClient may be nil, in which case
// http.DefaultClient is used.
func NewHTTPPeerClient(baseURL string, httpClient *http.Client) *HTTPPeerClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPPeerClient{baseURL: strings.TrimSuffix(baseURL, "/"), client: httpClient}
}

var bufferPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// GetFromRemote implements PeerClient.
func (c *HTTPPeerClient) GetFromRemote(group, key string) (ByteView, error) {
	u := fmt.Sprintf("%s/%s/%s", c.baseURL, group, key)
	res, err := c.client.Get(u)
	if err != nil {
		return ByteView{}, err
	}
	defer res.Body.Close()

	b := bufferPool.Get().(*bytes.Buffer)
	b.Reset()
	defer bufferPool.Put(b)
	if _, err := io.Copy(b, res.Body); err != nil {
		return ByteView{}, fmt.Errorf("reading response body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return ByteView{}, fmt.Errorf("%s", b.String())
	}
	return NewByteView(b.Bytes()), nil
}

// IsActive implements PeerClient with a lightweight reachability
// probe; it never blocks on the data path since the core does not
// consult it for routing decisions.
func (c *HTTPPeerClient) IsActive() bool {
	res, err := c.client.Get(c.baseURL)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return true
}
