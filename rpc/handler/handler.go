// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/publish"
)

// Handler - the HTTP request handlers for the RPC over HTTPS gateway
type Handler interface {
	Root(w http.ResponseWriter, r *http.Request)
	RPC(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	Connections(w http.ResponseWriter, r *http.Request)
	SetAllow(allow map[string][]*net.IPNet)
}

// InternalConnection - type to allow RPC system to interface to HTTP request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	maximumConnections uint64
	allow              map[string][]*net.IPNet
	count              counter.Counter
}

// New - create the HTTP handler set
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
	}
}

// SetAllow - set the IP ranges permitted to use the restricted endpoints
func (s *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	s.allow = allow
}

// Root - matches anything not matched elsewhere and returns an error
func (s *httpHandler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any registered RPC method
func (s *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// DetailsReply - details of the running node
type DetailsReply struct {
	Chain       string `json:"chain"`
	Mode        string `json:"mode"`
	TotalSupply uint64 `json:"totalSupply,string"`
	RPCs        uint64 `json:"rpcs"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	PublicKey   string `json:"publicKey"`
}

// Details - to allow a GET for the same response as the Node.Info RPC
// (restricted to the configured allow ranges)
func (s *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	s.count.Increment()
	defer s.count.Decrement()

	reply := DetailsReply{
		Chain:     mode.ChainName(),
		Mode:      mode.String(),
		RPCs:      s.count.Uint64(),
		Version:   s.version,
		Uptime:    time.Since(s.start).String(),
		PublicKey: hex.EncodeToString(publish.PublicKey()),
	}
	if ldgr := ledger.Get(); nil != ldgr {
		reply.TotalSupply = ldgr.TotalSupply()
	}

	sendReply(w, reply)
}

// Connections - the number of connections currently served
// (restricted to the configured allow ranges)
func (s *httpHandler) Connections(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("connections", r) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	s.count.Increment()
	defer s.count.Decrement()

	type reply struct {
		Connections uint64 `json:"connections"`
		Maximum     uint64 `json:"maximum"`
	}

	sendReply(w, reply{
		Connections: s.count.Uint64(),
		Maximum:     s.maximumConnections,
	})
}

// check the remote address against the allow ranges for an endpoint
func (s *httpHandler) isAllowed(endpoint string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last < 0 {
		return false
	}

	addr := strings.Trim(r.RemoteAddr[:last], "[]")
	ip := net.ParseIP(addr)
	if nil == ip {
		return false
	}

	for _, cidr := range s.allow[endpoint] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "Too Many Requests", http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
