package catalog

import (
	"fmt"

	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/entities"
)

// In-memory store fakes. Each fake assigns sequential IDs on create and can
// be forced to fail with failErr to exercise persistence-error propagation.

type fakeAuthorStore struct {
	authors map[uint]entities.Author
	nextID  uint
	failErr error
}

func newFakeAuthorStore(seed ...entities.Author) *fakeAuthorStore {
	s := &fakeAuthorStore{authors: make(map[uint]entities.Author)}
	for _, author := range seed {
		if author.ID > s.nextID {
			s.nextID = author.ID
		}
		s.authors[author.ID] = author
	}
	return s
}

func (s *fakeAuthorStore) GetByID(id uint) (*entities.Author, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	author, ok := s.authors[id]
	if !ok {
		return nil, fmt.Errorf("author %d: %w", id, database.ErrNotFound)
	}
	return &author, nil
}

func (s *fakeAuthorStore) GetAll() ([]entities.Author, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	list := make([]entities.Author, 0, len(s.authors))
	for _, author := range s.authors {
		list = append(list, author)
	}
	return list, nil
}

func (s *fakeAuthorStore) FindByName(firstName, familyName string) (*entities.Author, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	for _, author := range s.authors {
		if author.FirstName == firstName && author.FamilyName == familyName {
			return &author, nil
		}
	}
	return nil, fmt.Errorf("author %q %q: %w", firstName, familyName, database.ErrNotFound)
}

func (s *fakeAuthorStore) Create(author *entities.Author) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.nextID++
	author.ID = s.nextID
	s.authors[author.ID] = *author
	return nil
}

func (s *fakeAuthorStore) Delete(id uint) error {
	if s.failErr != nil {
		return s.failErr
	}
	if _, ok := s.authors[id]; !ok {
		return fmt.Errorf("author %d: %w", id, database.ErrNotFound)
	}
	delete(s.authors, id)
	return nil
}

func (s *fakeAuthorStore) Count() (int64, error) {
	if s.failErr != nil {
		return 0, s.failErr
	}
	return int64(len(s.authors)), nil
}

type fakeBookStore struct {
	books   map[uint]entities.Book
	nextID  uint
	failErr error
}

func newFakeBookStore(seed ...entities.Book) *fakeBookStore {
	s := &fakeBookStore{books: make(map[uint]entities.Book)}
	for _, book := range seed {
		if book.ID > s.nextID {
			s.nextID = book.ID
		}
		s.books[book.ID] = book
	}
	return s
}

func (s *fakeBookStore) GetByID(id uint) (*entities.Book, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	book, ok := s.books[id]
	if !ok {
		return nil, fmt.Errorf("book %d: %w", id, database.ErrNotFound)
	}
	return &book, nil
}

func (s *fakeBookStore) GetAll() ([]entities.Book, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	list := make([]entities.Book, 0, len(s.books))
	for _, book := range s.books {
		list = append(list, book)
	}
	return list, nil
}

func (s *fakeBookStore) GetByAuthor(authorID uint) ([]entities.Book, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	var list []entities.Book
	for _, book := range s.books {
		if book.AuthorID == authorID {
			list = append(list, book)
		}
	}
	return list, nil
}

func (s *fakeBookStore) GetByGenre(genreID uint) ([]entities.Book, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	var list []entities.Book
	for _, book := range s.books {
		for _, genre := range book.Genres {
			if genre.ID == genreID {
				list = append(list, book)
				break
			}
		}
	}
	return list, nil
}

func (s *fakeBookStore) Create(book *entities.Book) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.nextID++
	book.ID = s.nextID
	s.books[book.ID] = *book
	return nil
}

func (s *fakeBookStore) Delete(id uint) error {
	if s.failErr != nil {
		return s.failErr
	}
	if _, ok := s.books[id]; !ok {
		return fmt.Errorf("book %d: %w", id, database.ErrNotFound)
	}
	delete(s.books, id)
	return nil
}

func (s *fakeBookStore) Count() (int64, error) {
	if s.failErr != nil {
		return 0, s.failErr
	}
	return int64(len(s.books)), nil
}

type fakeGenreStore struct {
	genres  map[uint]entities.Genre
	nextID  uint
	failErr error
}

func newFakeGenreStore(seed ...entities.Genre) *fakeGenreStore {
	s := &fakeGenreStore{genres: make(map[uint]entities.Genre)}
	for _, genre := range seed {
		if genre.ID > s.nextID {
			s.nextID = genre.ID
		}
		s.genres[genre.ID] = genre
	}
	return s
}

func (s *fakeGenreStore) GetByID(id uint) (*entities.Genre, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	genre, ok := s.genres[id]
	if !ok {
		return nil, fmt.Errorf("genre %d: %w", id, database.ErrNotFound)
	}
	return &genre, nil
}

func (s *fakeGenreStore) GetAll() ([]entities.Genre, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	list := make([]entities.Genre, 0, len(s.genres))
	for _, genre := range s.genres {
		list = append(list, genre)
	}
	return list, nil
}

func (s *fakeGenreStore) FindByName(name string) (*entities.Genre, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	for _, genre := range s.genres {
		if genre.Name == name {
			return &genre, nil
		}
	}
	return nil, fmt.Errorf("genre %q: %w", name, database.ErrNotFound)
}

func (s *fakeGenreStore) Create(genre *entities.Genre) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.nextID++
	genre.ID = s.nextID
	s.genres[genre.ID] = *genre
	return nil
}

func (s *fakeGenreStore) Delete(id uint) error {
	if s.failErr != nil {
		return s.failErr
	}
	if _, ok := s.genres[id]; !ok {
		return fmt.Errorf("genre %d: %w", id, database.ErrNotFound)
	}
	delete(s.genres, id)
	return nil
}

func (s *fakeGenreStore) Count() (int64, error) {
	if s.failErr != nil {
		return 0, s.failErr
	}
	return int64(len(s.genres)), nil
}

type fakeInstanceStore struct {
	instances map[uint]entities.BookInstance
	nextID    uint
	failErr   error
}

func newFakeInstanceStore(seed ...entities.BookInstance) *fakeInstanceStore {
	s := &fakeInstanceStore{instances: make(map[uint]entities.BookInstance)}
	for _, instance := range seed {
		if instance.ID > s.nextID {
			s.nextID = instance.ID
		}
		s.instances[instance.ID] = instance
	}
	return s
}

func (s *fakeInstanceStore) GetByID(id uint) (*entities.BookInstance, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	instance, ok := s.instances[id]
	if !ok {
		return nil, fmt.Errorf("book instance %d: %w", id, database.ErrNotFound)
	}
	return &instance, nil
}

func (s *fakeInstanceStore) GetAll() ([]entities.BookInstance, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	list := make([]entities.BookInstance, 0, len(s.instances))
	for _, instance := range s.instances {
		list = append(list, instance)
	}
	return list, nil
}

func (s *fakeInstanceStore) GetByBook(bookID uint) ([]entities.BookInstance, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	var list []entities.BookInstance
	for _, instance := range s.instances {
		if instance.BookID == bookID {
			list = append(list, instance)
		}
	}
	return list, nil
}

func (s *fakeInstanceStore) Create(instance *entities.BookInstance) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.nextID++
	instance.ID = s.nextID
	s.instances[instance.ID] = *instance
	return nil
}

func (s *fakeInstanceStore) Delete(id uint) error {
	if s.failErr != nil {
		return s.failErr
	}
	if _, ok := s.instances[id]; !ok {
		return fmt.Errorf("book instance %d: %w", id, database.ErrNotFound)
	}
	delete(s.instances, id)
	return nil
}

func (s *fakeInstanceStore) Count() (int64, error) {
	if s.failErr != nil {
		return 0, s.failErr
	}
	return int64(len(s.instances)), nil
}

func (s *fakeInstanceStore) CountByStatus(status entities.InstanceStatus) (int64, error) {
	if s.failErr != nil {
		return 0, s.failErr
	}
	var count int64
	for _, instance := range s.instances {
		if instance.Status == status {
			count++
		}
	}
	return count, nil
}
