// internal/model/stats.go
package model

import "github.com/google/uuid"

// SessionAggregates is the rollup over a student's completed sessions.
type SessionAggregates struct {
	CompletedSessions int64   `json:"sesiones_completadas"`
	TotalMinutes      int64   `json:"tiempo_total_minutos"`
	TotalWords        int64   `json:"palabras_practicadas"`
	TotalCorrect      int64   `json:"frases_correctas"`
	TotalIncorrect    int64   `json:"frases_incorrectas"`
	AverageScore      float64 `json:"puntuacion_promedio"`
}

// StudentStatsResponse is the body of GET /estadisticas.
type StudentStatsResponse struct {
	Student    StudentSummary `json:"estudiante"`
	Statistics SessionStats   `json:"estadisticas"`
}

type StudentSummary struct {
	Name              string    `json:"nombre"`
	Level             CEFRLevel `json:"nivel_ingles"`
	PracticeHours     int       `json:"horas_practica"`
	CompletedSessions int       `json:"sesiones_completadas"`
	AverageScore      float64   `json:"puntuacion_promedio"`
}

type SessionStats struct {
	TotalSessions     int64   `json:"sesiones_totales"`
	CompletedSessions int64   `json:"sesiones_completadas"`
	TotalMinutes      int64   `json:"tiempo_total_minutos"`
	WordsPracticed    int64   `json:"palabras_practicadas"`
	CorrectPhrases    int64   `json:"frases_correctas"`
	IncorrectPhrases  int64   `json:"frases_incorrectas"`
	AverageScore      float64 `json:"puntuacion_promedio"`
}

// ClassReportResponse is the body of GET /reportes/estudiantes.
type ClassReportResponse struct {
	TotalStudents int             `json:"total_estudiantes"`
	Reports       []StudentReport `json:"reportes"`
}

type StudentReport struct {
	StudentID       uuid.UUID              `json:"estudiante_id"`
	StudentName     string                 `json:"nombre_estudiante"`
	CurrentLevel    CEFRLevel              `json:"nivel_actual"`
	TotalSessions   int64                  `json:"sesiones_totales"`
	TotalMinutes    int64                  `json:"tiempo_practica_total"`
	AverageScore    float64                `json:"puntuacion_promedio"`
	Progress        map[string]interface{} `json:"progreso"`
	AreasToImprove  []string               `json:"areas_mejora"`
	Recommendations []string               `json:"recomendaciones"`
}
