package notify

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v2"
)

//go:embed messages.yaml
var defaultMessages []byte

type Message struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Catalog holds the notification and mail texts keyed by message name.
type Catalog struct {
	Notifications map[string]Message `yaml:"notifications"`
	Mails         map[string]Message `yaml:"mails"`

	compiled map[string]*template.Template
}

// MessageData is the value the message templates are executed with.
type MessageData struct {
	DocumentTitle string
	RecipientName string
	ActorName     string
	Reason        string
	Deadline      string
	Link          string
	ExpiresAt     string
}

func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultMessages)
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}
	c.compiled = make(map[string]*template.Template)
	for section, msgs := range map[string]map[string]Message{"notifications": c.Notifications, "mails": c.Mails} {
		for key, m := range msgs {
			for part, text := range map[string]string{"title": m.Title, "body": m.Body} {
				name := section + "." + key + "." + part
				tpl, err := template.New(name).Option("missingkey=zero").Parse(text)
				if err != nil {
					return nil, fmt.Errorf("message %s: %w", name, err)
				}
				c.compiled[name] = tpl
			}
		}
	}
	return &c, nil
}

func (c *Catalog) Notification(key string, data MessageData) (string, string, error) {
	return c.render("notifications", key, data)
}

func (c *Catalog) Mail(key string, data MessageData) (string, string, error) {
	return c.render("mails", key, data)
}

func (c *Catalog) render(section, key string, data MessageData) (string, string, error) {
	title, err := c.exec(section+"."+key+".title", data)
	if err != nil {
		return "", "", err
	}
	body, err := c.exec(section+"."+key+".body", data)
	if err != nil {
		return "", "", err
	}
	return title, body, nil
}

func (c *Catalog) exec(name string, data MessageData) (string, error) {
	tpl, ok := c.compiled[name]
	if !ok {
		return "", fmt.Errorf("message %s not defined", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
