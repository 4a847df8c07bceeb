package report

import (
	"registro-clientes/internal/domain/report"
)

// Entry pairs a fixed analytical query with its display metadata. The
// catalog is immutable and ordered; names and SQL are carried over
// from the original registry unchanged.
type Entry struct {
	// Slug is the stable URL-safe identifier.
	Slug string
	// Name is the display title shown to the user.
	Name string
	// Query is the full analytical statement. No runtime parameters:
	// all filtering happens inside the SQL.
	Query string
	// Columns are the human-readable header labels, in display order,
	// matching the query's select list one for one.
	Columns []string
	// Chart selects the graphical rendering for this report.
	Chart report.ChartKind
}

var catalog = []Entry{
	{
		Slug: "clientes-nuevos-festivos",
		Name: "1. Clientes nuevos por fechas festivas",
		Query: `
			SELECT c.Id_contrato, c.Descripcion, c.Fecha_inicio,
			       CASE WHEN EXTRACT(MONTH FROM c.Fecha_inicio) IN (12, 1)
			            THEN 'Campaña Festiva' ELSE 'Otro Periodo' END AS periodo,
			       cc.Razon_Social AS cliente_corporativo
			FROM Contrato c
			LEFT JOIN ClienteCorporativo cc ON cc.RUC = c.RUC_Corporativo
			WHERE EXTRACT(MONTH FROM c.Fecha_inicio) IN (12, 1)`,
		Columns: []string{"Id Contrato", "Descripción", "Fecha Inicio", "Periodo", "Cliente Corporativo"},
		Chart:   report.ChartGeneric,
	},
	{
		Slug: "ranking-regiones",
		Name: "2. Ranking de regiones activas",
		Query: `
			SELECT tipo_cliente,
			       SPLIT_PART(Direccion_Fiscal, '-', 2) AS ciudad,
			       COUNT(*) AS cantidad_clientes
			FROM (
			    SELECT 'Corporativo' AS tipo_cliente, Direccion_Fiscal FROM DatosClienteCorporativo
			    UNION ALL
			    SELECT 'Mayorista', Direccion_Fiscal FROM ClienteMayorista
			) AS direcciones
			GROUP BY tipo_cliente, ciudad
			ORDER BY cantidad_clientes DESC`,
		Columns: []string{"Tipo Cliente", "Ciudad", "Cantidad Clientes"},
		Chart:   report.ChartGeneric,
	},
	{
		Slug: "crecimiento-anual",
		Name: "3. Crecimiento anual de clientes",
		Query: `
			SELECT EXTRACT(YEAR FROM Fecha_inicio) AS anio,
			       COUNT(Id_contrato) AS nuevos_clientes
			FROM Contrato
			GROUP BY anio
			ORDER BY anio`,
		Columns: []string{"Año", "Nuevos Clientes"},
		Chart:   report.ChartBar,
	},
	{
		Slug: "preferencias-minoristas",
		Name: "4. Preferencias de clientes minoristas",
		Query: `
			SELECT Preferencias, COUNT(*) AS cantidad
			FROM ClienteMinorista
			GROUP BY Preferencias
			ORDER BY cantidad DESC`,
		Columns: []string{"Preferencias", "Cantidad"},
		Chart:   report.ChartPie,
	},
	{
		Slug: "clientes-sin-contrato",
		Name: "5. Clientes sin contrato completo",
		Query: `
			SELECT
			    'Corporativo' AS tipo_cliente,
			    cc.Razon_Social AS nombre_cliente,
			    CASE WHEN c.Id_contrato IS NULL THEN 'Sin Contrato' ELSE 'Con Contrato' END AS estado_contrato,
			    CASE WHEN dcc.Direccion_Fiscal IS NULL OR dcc.Telefono IS NULL THEN 'Datos incompletos' ELSE 'Datos completos' END AS estado_datos
			FROM ClienteCorporativo cc
			LEFT JOIN Contrato c ON cc.RUC = c.RUC_Corporativo
			LEFT JOIN DatosClienteCorporativo dcc ON cc.RUC = dcc.RUC_Corporativo

			UNION ALL

			SELECT
			    'Mayorista' AS tipo_cliente,
			    cm.Razon_Social AS nombre_cliente,
			    'Sin Contrato' AS estado_contrato,
			    CASE WHEN dcm.Telefono IS NULL OR dcm.Correo IS NULL THEN 'Datos incompletos' ELSE 'Datos completos' END AS estado_datos
			FROM ClienteMayorista cm
			LEFT JOIN DatosClienteMayorista dcm ON cm.RUC = dcm.RUC_Mayorista`,
		Columns: []string{"Tipo Cliente", "Nombre", "Estado Contrato", "Estado Datos"},
		Chart:   report.ChartGeneric,
	},
	{
		Slug: "cobertura-clientes",
		Name: "6. Cobertura de clientes corporativos y mayoristas",
		Query: `
			SELECT tipo_cliente, nombre_cliente,
			       COUNT(DISTINCT TRIM(ciudad)) AS cantidad_ciudades
			FROM (
			    SELECT 'Mayorista' AS tipo_cliente, cm.Razon_Social AS nombre_cliente, SPLIT_PART(cm.Direccion_Fiscal, '-', 2) AS ciudad FROM ClienteMayorista cm
			    UNION ALL
			    SELECT 'Corporativo', cc.Razon_Social, SPLIT_PART(dcc.Direccion_Fiscal, '-', 2) FROM ClienteCorporativo cc JOIN DatosClienteCorporativo dcc ON cc.RUC = dcc.RUC_Corporativo
			) AS cobertura
			GROUP BY tipo_cliente, nombre_cliente
			ORDER BY cantidad_ciudades DESC`,
		Columns: []string{"Tipo Cliente", "Cliente", "Ciudades Cubiertas"},
		Chart:   report.ChartGeneric,
	},
	{
		Slug: "distribucion-correos",
		Name: "7. Distribución de correos electrónicos",
		Query: `
			SELECT 'Cliente Minorista' AS tipo, COUNT(Correo) AS total FROM ClienteMinorista
			UNION ALL
			SELECT 'Cliente Mayorista', COUNT(Correo) FROM DatosClienteMayorista
			UNION ALL
			SELECT 'Cliente Corporativo', COUNT(Correo) FROM ClienteCorporativo`,
		Columns: []string{"Tipo Cliente", "Cantidad Correos"},
		Chart:   report.ChartBar,
	},
	{
		Slug: "contratos-activos",
		Name: "8. Contratos activos por cliente corporativo",
		Query: `
			SELECT cc.Razon_Social AS cliente, COUNT(c.Id_contrato) AS total_activos
			FROM ClienteCorporativo cc
			LEFT JOIN Contrato c ON cc.RUC = c.RUC_Corporativo
			WHERE c.Estado = 'Activo'
			GROUP BY cc.Razon_Social
			ORDER BY total_activos DESC
			LIMIT 10`,
		Columns: []string{"Cliente Corporativo", "Contratos Activos"},
		Chart:   report.ChartGeneric,
	},
	{
		Slug: "administradores-corporativos-activos",
		Name: "9. Administradores con más clientes corporativos activos",
		Query: `
			SELECT a.DNI, a.Nombre_Apellido AS administrador, COUNT(DISTINCT cc.RUC) AS clientes_activos
			FROM Administrador a
			LEFT JOIN ClienteCorporativo cc ON a.DNI = cc.DNI_administrador
			LEFT JOIN Contrato c ON cc.RUC = c.RUC_Corporativo
			WHERE c.Estado = 'Activo'
			GROUP BY a.DNI, a.Nombre_Apellido
			ORDER BY clientes_activos DESC`,
		Columns: []string{"DNI", "Administrador", "Clientes Activos"},
		Chart:   report.ChartGeneric,
	},
	{
		Slug: "ranking-administradores",
		Name: "10. Ranking de administradores según clientes gestionados",
		Query: `
			SELECT a.DNI, a.Nombre_Apellido AS administrador, COUNT(todos.DNI) AS cantidad
			FROM Administrador a
			LEFT JOIN (
			    SELECT DNI_administrador AS DNI FROM ClienteMinorista
			    UNION ALL
			    SELECT DNI_administrador FROM ClienteMayorista
			    UNION ALL
			    SELECT DNI_administrador FROM ClienteCorporativo
			) todos ON a.DNI = todos.DNI
			GROUP BY a.DNI, a.Nombre_Apellido
			ORDER BY cantidad DESC`,
		Columns: []string{"DNI", "Administrador", "Clientes Gestionados"},
		Chart:   report.ChartGeneric,
	},
}

// Catalog returns the ordered report entries.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an entry by slug or exact display name.
func Lookup(key string) (Entry, bool) {
	for _, e := range catalog {
		if e.Slug == key || e.Name == key {
			return e, true
		}
	}
	return Entry{}, false
}
