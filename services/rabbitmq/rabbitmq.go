package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

//Connection is the connection created
type Connection struct {
	sync.Mutex
	name    string
	domain  string
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queues  []string
	Err     chan error
}

var (
	// DialTimeout bounds every broker dial, publishes included.
	DialTimeout = 3 * time.Second

	poolMutex      sync.Mutex
	connectionPool = make(map[string]*Connection)
)

//NewConnection returns the new connection object
func NewConnection(name, domain string, queues []string) *Connection {
	poolMutex.Lock()
	defer poolMutex.Unlock()
	if c, ok := connectionPool[name]; ok {
		return c
	}
	c := &Connection{
		name:   name,
		domain: domain,
		Queues: queues,
		Err:    make(chan error, 1),
	}
	connectionPool[name] = c
	return c
}

//GetConnection returns the connection which was instantiated
func GetConnection(name string) *Connection {
	poolMutex.Lock()
	defer poolMutex.Unlock()
	return connectionPool[name]
}

func (c *Connection) Connect() error {
	c.Lock()
	defer c.Unlock()
	return c.connect()
}

func (c *Connection) connect() error {
	var err error
	c.Conn, err = amqp.DialConfig(c.domain, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(DialTimeout),
	})
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection with %s : %s", c.domain, err.Error())
	}
	conn := c.Conn
	go func() {
		<-conn.NotifyClose(make(chan *amqp.Error)) //Listen to NotifyClose
		c.Lock()
		if c.Conn == conn {
			c.Channel = nil
		}
		c.Unlock()
		select {
		case c.Err <- errors.New("Connection Closed"):
		default:
		}
	}()
	c.Channel, err = c.Conn.Channel()
	if err != nil {
		return fmt.Errorf("Channel: %s", err)
	}
	return nil
}

func (c *Connection) BindQueue() error {
	c.Lock()
	defer c.Unlock()
	return c.bindQueue()
}

func (c *Connection) bindQueue() error {
	for _, q := range c.Queues {
		if _, err := c.Channel.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return fmt.Errorf("error in declaring the queue %s", err)
		}
	}
	return nil
}

//Reconnect reconnects the connection
func (c *Connection) Reconnect() error {
	c.Lock()
	defer c.Unlock()
	return c.reconnect()
}

func (c *Connection) reconnect() error {
	if err := c.connect(); err != nil {
		return err
	}
	return c.bindQueue()
}

// Connected reports whether a channel is open.
func (c *Connection) Connected() bool {
	c.Lock()
	defer c.Unlock()
	return c.Channel != nil
}

// Inspect returns the declared state of every queue.
func (c *Connection) Inspect() ([]amqp.Queue, error) {
	c.Lock()
	defer c.Unlock()
	if c.Channel == nil {
		return nil, errors.New("Channel get fail")
	}
	queues := make([]amqp.Queue, 0, len(c.Queues))
	for _, q := range c.Queues {
		queue, err := c.Channel.QueueInspect(q)
		if err != nil {
			return queues, fmt.Errorf("Queue[%s] error: %s", q, err.Error())
		}
		queues = append(queues, queue)
	}
	return queues, nil
}

// Publish sends body as a persistent JSON message, reconnecting once when
// the channel was lost.
func (c *Connection) Publish(queue string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	c.Lock()
	defer c.Unlock()
	if c.Channel == nil {
		if err := c.reconnect(); err != nil {
			return err
		}
	}
	return c.Channel.Publish(
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         data,
		})
}

func (c *Connection) Close() error {
	c.Lock()
	defer c.Unlock()
	if c.Conn == nil {
		return nil
	}
	err := c.Conn.Close()
	c.Conn = nil
	c.Channel = nil
	return err
}
