// Package fuzztests houses Go fuzz harnesses for the literal pipeline
// (source -> lexer -> parsenum) and for the runtime conversions. The goal is
// to catch panics, hangs and disagreements with math/big and strconv on
// arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер и парсер чисел.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parsenum,
// internal/driver, internal/diag, internal/testkit.
package fuzztests
