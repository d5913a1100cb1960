// Package cqrs implements the Command Query Responsibility Segregation
// pattern: state-changing operations are dispatched as commands, reads as
// queries, each to a single registered handler.
package cqrs

import (
	"fmt"
	"reflect"
	"sync"
)

// NameProvider is the common interface for commands and queries.
type NameProvider interface {
	// Name returns the name of the message (command or query).
	Name() string
}

// Command represents a message that changes the state of the system.
// Commands are named with verbs in imperative form (e.g., "SaveWebApp").
type Command interface {
	NameProvider
}

// Query represents a request for information that does not change state.
type Query interface {
	NameProvider
}

// CommandHandler defines the interface for handling commands.
type CommandHandler[C Command] interface {
	Handle(cmd C) error
}

// QueryHandler defines the interface for handling queries.
type QueryHandler[Q Query, R any] interface {
	Handle(query Q) (R, error)
}

// Bus holds the handler registry shared by the command and query buses.
type Bus struct {
	handlers       map[string]interface{}
	mutex          sync.RWMutex
	isShuttingDown bool
	activeMessages sync.WaitGroup
	busType        string // "command" or "query"
}

// NewBus creates a new Bus of the specified type.
func NewBus(busType string) *Bus {
	return &Bus{
		handlers: make(map[string]interface{}),
		busType:  busType,
	}
}

// Register registers a handler under the name produced by validateFunc.
// The handler must be a pointer to a struct with a Handle method taking the
// message as its only parameter.
func (b *Bus) Register(handler interface{}, messageType reflect.Type, validateFunc func(reflect.Type) (string, error)) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	handlerType := reflect.TypeOf(handler)
	if handlerType == nil || handlerType.Kind() != reflect.Ptr {
		return fmt.Errorf("handler must be a pointer to a struct, got %T", handler)
	}

	handleMethod, exists := handlerType.MethodByName("Handle")
	if !exists {
		return fmt.Errorf("handler %T does not implement Handle method", handler)
	}

	if handleMethod.Type.NumIn() != 2 { // receiver + message
		return fmt.Errorf("Handle method must have exactly one parameter (the %s)", b.busType)
	}

	messageName, err := validateFunc(messageType)
	if err != nil {
		return err
	}

	if _, exists := b.handlers[messageName]; exists {
		return fmt.Errorf("handler for %s %s already registered", b.busType, messageName)
	}

	b.handlers[messageName] = handler
	return nil
}

// Shutdown initiates a graceful shutdown of the bus. New messages will be
// rejected, but messages already in flight are allowed to complete.
func (b *Bus) Shutdown() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.isShuttingDown = true
}

// WaitForCompletion waits for all active messages to complete. It should be
// called after Shutdown.
func (b *Bus) WaitForCompletion() {
	b.activeMessages.Wait()
}

// IsShuttingDown returns true if the bus is shutting down.
func (b *Bus) IsShuttingDown() bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.isShuttingDown
}

// GetHandler returns the handler for the given message name.
func (b *Bus) GetHandler(messageName string) (interface{}, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	handler, exists := b.handlers[messageName]
	return handler, exists
}

// IncrementActiveCount marks a message as in flight.
func (b *Bus) IncrementActiveCount() {
	b.activeMessages.Add(1)
}

// DecrementActiveCount marks a message as completed.
func (b *Bus) DecrementActiveCount() {
	b.activeMessages.Done()
}
