// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Message - message to put into a queue
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// the exported message queues
//
// the size tag gives the buffer size of the underlying channel
type busses struct {
	Broadcast *broadcaster `size:"1000"` // to all subscribed event listeners
	TestQueue *queue       `size:"50"`   // for testing use
}

// Bus - all available message queues
var Bus busses

// queue - 1:1 message queue
type queue struct {
	c chan Message
}

// Send - send a message to a 1:1 queue
//
// additional parameters are packed as data frames
func (q *queue) Send(command string, parameters ...[]byte) {
	q.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - the channel to read from
func (q *queue) Chan() <-chan Message {
	return q.c
}

// Release - drain any unread messages
func (q *queue) Release() {
	for 0 != len(q.c) {
		<-q.c
	}
}

// broadcaster - 1:M message queue
//
// each subscriber gets its own channel; a message is dropped for a
// subscriber whose channel is full rather than blocking the sender
type broadcaster struct {
	sync.Mutex
	out  []chan Message
	size int
}

// Send - send a message to all current subscribers
func (b *broadcaster) Send(command string, parameters ...[]byte) {
	b.Lock()
	defer b.Unlock()

	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	for _, out := range b.out {
		select {
		case out <- m:
		default: // slow subscribers lose messages
		}
	}
}

// Chan - subscribe, returning a new channel to read broadcasts
//
// a negative size selects the default buffer size from the struct tag
func (b *broadcaster) Chan(size int) <-chan Message {
	b.Lock()
	defer b.Unlock()

	if size < 0 {
		size = b.size
	}
	c := make(chan Message, size)
	b.out = append(b.out, c)
	return c
}

// Release - close all subscriber channels
func (b *broadcaster) Release() {
	b.Lock()
	defer b.Unlock()

	for _, out := range b.out {
		close(out)
	}
	b.out = nil
}

// create all message queues
func init() {

	// this will be a struct type
	busType := reflect.TypeOf(Bus)

	// get write access by using pointer + Elem()
	busValue := reflect.ValueOf(&Bus).Elem()

	// scan each field
	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)
		sizeTag := fieldInfo.Tag.Get("size")

		size, err := strconv.Atoi(sizeTag)
		if nil != err || size < 1 {
			m := fmt.Sprintf("queue: %v has invalid size: %q", fieldInfo, sizeTag)
			panic(m)
		}

		switch fieldInfo.Type {
		case reflect.TypeOf((*queue)(nil)):
			q := &queue{
				c: make(chan Message, size),
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		case reflect.TypeOf((*broadcaster)(nil)):
			b := &broadcaster{
				size: size,
			}
			busValue.Field(i).Set(reflect.ValueOf(b))

		default:
			m := fmt.Sprintf("queue: %v has invalid type: %v", fieldInfo, fieldInfo.Type)
			panic(m)
		}
	}
}
