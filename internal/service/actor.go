package service

// Actor identifies who issued a command; it fills audit columns and event payloads.
type Actor struct {
	ID    string
	Name  string
	Email string
}

// SystemActor is used for seeding and other unattended writes.
var SystemActor = Actor{ID: "system", Name: "Sistema"}

func (a Actor) payload() map[string]interface{} {
	return map[string]interface{}{
		"id":    a.ID,
		"name":  a.Name,
		"email": a.Email,
	}
}

// Publisher receives change events for connected clients. *ws.Hub implements it.
type Publisher interface {
	Publish(action string, data map[string]interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, map[string]interface{}) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
