package dto

// CreatePersonRequest is the payload for POST /person
type CreatePersonRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Surname string `json:"surname" validate:"required,min=1"`
	Age     *int   `json:"age,omitempty" validate:"omitempty,min=0,max=120"`
}

// Person is the API-facing person entity. Age is nullable and always
// present in the JSON output; CreatedAt is an ISO-8601 timestamp.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Age       *int   `json:"age"`
	CreatedAt string `json:"createdAt"`
}

// PersonResponse wraps a single person in the response envelope
type PersonResponse struct {
	Data Person `json:"data"`
}

// PeopleResponse wraps a collection of people in the response envelope
type PeopleResponse struct {
	Data []Person `json:"data"`
}

// NewPersonResponse builds a single-entity envelope
func NewPersonResponse(p Person) PersonResponse {
	return PersonResponse{Data: p}
}

// NewPeopleResponse builds a collection envelope. An empty collection
// serializes as [], never null.
func NewPeopleResponse(people []Person) PeopleResponse {
	if people == nil {
		people = []Person{}
	}
	return PeopleResponse{Data: people}
}
