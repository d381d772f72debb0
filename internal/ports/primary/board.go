// Package primary defines the primary ports (driving interfaces) for
// the application. The CLI and any future transport call the store
// through these interfaces.
package primary

import "context"

// BoardService defines the primary port for board operations. All
// mutations are serialized per store instance; a failed operation
// never partially applies.
type BoardService interface {
	// CreateProject creates a new, empty project.
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)

	// UpdateProject applies a partial patch to a project.
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*Project, error)

	// DeleteProject irreversibly removes a project and its document.
	DeleteProject(ctx context.Context, projectID string) error

	// GetProjectBoard retrieves the full board of one project.
	GetProjectBoard(ctx context.Context, projectID string) (*ProjectBoard, error)

	// ListProjects lists all projects, most recently updated first.
	ListProjects(ctx context.Context) ([]*Project, error)

	// ListProjectSummaries lists projects with list/item counts.
	ListProjectSummaries(ctx context.Context) ([]*ProjectSummary, error)

	// CreateList appends a new list to a project's column order.
	CreateList(ctx context.Context, req CreateListRequest) (*List, error)

	// UpdateList applies a partial patch to a list.
	UpdateList(ctx context.Context, req UpdateListRequest) (*List, error)

	// DeleteList removes a list; its items become loose.
	DeleteList(ctx context.Context, req DeleteListRequest) error

	// DuplicateList clones a list and its items at the end of the
	// column order.
	DuplicateList(ctx context.Context, req DuplicateListRequest) (*DuplicateListResponse, error)

	// ReorderLists reorders a project's lists. Unknown ids are
	// ignored; omitted lists keep their relative order after the
	// named ones.
	ReorderLists(ctx context.Context, req ReorderListsRequest) ([]*List, error)

	// CreateItem appends a new item to a container.
	CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error)

	// UpdateItem applies a partial patch to an item.
	UpdateItem(ctx context.Context, req UpdateItemRequest) (*Item, error)

	// DeleteItem removes an item and renumbers its container.
	DeleteItem(ctx context.Context, req DeleteItemRequest) error

	// MoveItem moves an item within or across containers.
	MoveItem(ctx context.Context, req MoveItemRequest) (*Item, error)

	// ImportProjectJSON imports arbitrary JSON text holding either a
	// single document or the legacy multi-project format. Imports
	// never overwrite existing projects.
	ImportProjectJSON(ctx context.Context, text string) (*ImportResponse, error)

	// ApplySuggestions validates a suggestion payload and applies it
	// to a project, skipping unresolvable references.
	ApplySuggestions(ctx context.Context, req ApplySuggestionsRequest) (*ApplySuggestionsResponse, error)
}

// Project is a project as exposed to callers.
type Project struct {
	ID          string
	Title       string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// ProjectSummary is a project plus record counts.
type ProjectSummary struct {
	Project
	ListCount int
	ItemCount int
}

// List is an ordered column as exposed to callers.
type List struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Order       int
	CreatedAt   string
	UpdatedAt   string
}

// Item is an ordered card as exposed to callers. A nil ListID means
// the item is loose.
type Item struct {
	ID          string
	ProjectID   string
	ListID      *string
	Label       string
	Description string
	Order       int
	CreatedAt   string
	UpdatedAt   string
}

// ProjectBoard is the full state of one project.
type ProjectBoard struct {
	Project Project
	Lists   []*List
	Items   []*Item
}

// CreateProjectRequest contains parameters for creating a project.
type CreateProjectRequest struct {
	Title       string
	Description string
}

// UpdateProjectRequest patches a project. Nil fields are unchanged.
type UpdateProjectRequest struct {
	ProjectID   string
	Title       *string
	Description *string
}

// CreateListRequest contains parameters for creating a list.
type CreateListRequest struct {
	ProjectID   string
	Title       string
	Description string
}

// UpdateListRequest patches a list. Nil fields are unchanged.
type UpdateListRequest struct {
	ProjectID   string
	ListID      string
	Title       *string
	Description *string
}

// DeleteListRequest identifies a list to delete.
type DeleteListRequest struct {
	ProjectID string
	ListID    string
}

// DuplicateListRequest identifies a list to clone.
type DuplicateListRequest struct {
	ProjectID string
	ListID    string
}

// DuplicateListResponse contains the clone and how many items were
// copied into it.
type DuplicateListResponse struct {
	List        *List
	ClonedItems int
}

// ReorderListsRequest names the desired list order. Ids not
// belonging to the project are silently ignored.
type ReorderListsRequest struct {
	ProjectID  string
	IDsInOrder []string
}

// CreateItemRequest contains parameters for creating an item. A nil
// ListID creates the item loose.
type CreateItemRequest struct {
	ProjectID   string
	ListID      *string
	Label       string
	Description string
}

// UpdateItemRequest patches an item. Nil fields are unchanged.
type UpdateItemRequest struct {
	ProjectID   string
	ItemID      string
	Label       *string
	Description *string
}

// DeleteItemRequest identifies an item to delete.
type DeleteItemRequest struct {
	ProjectID string
	ItemID    string
}

// MoveItemRequest moves an item to a container position. A nil
// ToListID targets the loose container. ToIndex beyond the container
// bounds is clamped.
type MoveItemRequest struct {
	ProjectID string
	ItemID    string
	ToListID  *string
	ToIndex   int
}

// ImportResponse reports the projects an import produced.
type ImportResponse struct {
	ImportedProjectIDs []string
}

// ApplySuggestionsRequest carries raw generator output to apply to a
// project.
type ApplySuggestionsRequest struct {
	ProjectID string
	Payload   []byte
}

// ApplySuggestionsResponse reports how much of the batch was applied.
type ApplySuggestionsResponse struct {
	CreatedLists int
	CreatedItems int
	AppliedMoves int
	Skipped      int
}
