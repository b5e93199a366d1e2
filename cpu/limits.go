package cpu

const (
	MEMORY_SIZE = 100             // Number of memory cells
	ADDR_LIMIT  = MEMORY_SIZE - 1 // Highest valid memory address
	WORD_LIMIT  = 999             // Highest value a cell or register can hold
)
