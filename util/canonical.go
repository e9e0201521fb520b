// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/tokend/fault"
)

// Connection - type to hold an IP and Port
type Connection struct {
	ip   net.IP
	port uint16
}

// NewConnection - convert an "IP:Port" string to a connection
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	ip := net.ParseIP(strings.Trim(host, " "))
	if nil == ip {
		return nil, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if nil != err {
		return nil, err
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	c := &Connection{
		ip:   ip,
		port: uint16(numericPort),
	}
	return c, nil
}

// CanonicalIPandPort - make the IP:Port canonical
//
// prefix is "tcp://" or empty
// returns prefixed string and IPv6 flag
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := int(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + strconv.Itoa(port), false
	}
	return prefix + "[" + conn.ip.String() + "]:" + strconv.Itoa(port), true
}

// String - representation for use by the fmt package (for %s)
func (conn Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}
