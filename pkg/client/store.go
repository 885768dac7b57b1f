package client

import (
	"sync"

	"smartnotes/internal/gateway/app/dto"
)

// NotesStore - локальный контейнер состояния заметок на стороне клиента.
// Хранит зеркало последнего ответа сервера: после каждой мутации ожидается
// повторная загрузка или точечное применение результата сервера. Состояние
// никогда не считается более свежим, чем последний Set.
type NotesStore struct {
	mu    sync.RWMutex
	notes []dto.NoteResponse
}

// NewNotesStore создает пустой контейнер состояния.
func NewNotesStore() *NotesStore {
	return &NotesStore{}
}

// Set полностью замещает состояние списком, полученным от сервера.
func (s *NotesStore) Set(notes []dto.NoteResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = make([]dto.NoteResponse, len(notes))
	copy(s.notes, notes)
}

// Add добавляет созданную заметку в начало списка, как при сортировке
// по времени создания по убыванию.
func (s *NotesStore) Add(note dto.NoteResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]dto.NoteResponse{note}, s.notes...)
}

// Update замещает заметку с совпадающим идентификатором. Сообщает,
// была ли заметка найдена.
func (s *NotesStore) Update(note dto.NoteResponse) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			s.notes[i] = note
			return true
		}
	}
	return false
}

// Remove удаляет заметку по идентификатору. Сообщает, была ли она найдена.
func (s *NotesStore) Remove(noteID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == noteID {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// Get возвращает заметку по идентификатору.
func (s *NotesStore) Get(noteID string) (dto.NoteResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.notes {
		if s.notes[i].ID == noteID {
			return s.notes[i], true
		}
	}
	return dto.NoteResponse{}, false
}

// All возвращает копию текущего состояния.
func (s *NotesStore) All() []dto.NoteResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.NoteResponse, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len возвращает количество заметок в контейнере.
func (s *NotesStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}
